package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/grafana/insurestat/errors"
	"github.com/grafana/insurestat/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "(none)"

const defaultSource = "insurance.csv"

var rootCmd = &cobra.Command{
	Use:   "insurestat [file]",
	Short: "Prints descriptive statistics of an insurance charges dataset",
	Long: `insurestat loads a csv file with the columns age, sex, bmi, children,
smoker, region and charges (in any order) and prints the average charge,
the average charge by smoker and by region, and the correlation between
BMI and charges. The file defaults to insurance.csv. Files ending in .gz
are decompressed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		return logger.Setup("insurestat", viper.GetString("log-level"), os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("version") {
			fmt.Printf("insurestat (version: %s - runtime: %s)\n", version, runtime.Version())
			return nil
		}
		source := defaultSource
		if len(args) == 1 {
			source = args[0]
		}
		return run(configFromViper(source), cmd.OutOrStdout())
	},
}

func init() {
	fl := rootCmd.Flags()
	fl.String("config", "", "optional configuration file (toml, yaml or json)")
	fl.String("log-level", "info", "log level. panic|fatal|error|warning|info|debug")
	fl.Bool("summary", false, "also print the distribution of charges")
	fl.String("pushgateway", "", "push the statistics to the Prometheus Pushgateway at this url. leave empty to disable")
	fl.String("job", "insurestat", "job name to use on the pushgateway")
	fl.Bool("dump", false, "dump the computed statistics at debug log level")
	fl.Bool("version", false, "print version string")

	viper.SetEnvPrefix("insurestat")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(fl); err != nil {
		panic(err)
	}
}

// loadConfig reads the config file, if any. Flags and env vars take precedence over it.
func loadConfig() error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("can't read config file %q: %s", path, err)
	}
	return nil
}

func configFromViper(source string) config {
	return config{
		Source:      source,
		Summary:     viper.GetBool("summary"),
		Pushgateway: viper.GetString("pushgateway"),
		Job:         viper.GetString("job"),
		Dump:        viper.GetBool("dump"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		// command line and config errors carry no code and exit with 1
		os.Exit(errors.Code(err))
	}
}

package main

import (
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/grafana/insurestat/aggregator"
	"github.com/grafana/insurestat/export"
	"github.com/grafana/insurestat/loader"
	"github.com/grafana/insurestat/report"
	log "github.com/sirupsen/logrus"
)

type config struct {
	Source      string
	Summary     bool
	Pushgateway string
	Job         string
	Dump        bool
}

// run loads the source, computes the statistics and writes the report to out.
// Nothing is written to out when loading or aggregating fails.
func run(cfg config, out io.Writer) error {
	start := time.Now()

	records, err := loader.Load(cfg.Source)
	if err != nil {
		return err
	}
	log.WithField("source", cfg.Source).Infof("loaded %d records", len(records))

	rep, err := report.Build(aggregator.New(records), cfg.Summary)
	if err != nil {
		return err
	}
	if cfg.Dump && log.IsLevelEnabled(log.DebugLevel) {
		log.Debug("computed statistics:\n" + spew.Sdump(rep))
	}

	if _, err := rep.WriteTo(out); err != nil {
		return err
	}

	if cfg.Pushgateway != "" {
		m := export.NewMetrics()
		m.Set(rep, time.Now())
		if err := m.Push(cfg.Pushgateway, cfg.Job); err != nil {
			log.WithField("pushgateway", cfg.Pushgateway).Warnf("failed to push statistics: %s", err)
		} else {
			log.WithField("pushgateway", cfg.Pushgateway).Info("pushed statistics")
		}
	}

	log.Infof("done in %s", time.Since(start))
	return nil
}

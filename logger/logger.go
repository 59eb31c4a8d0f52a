// Package logger provides the logrus TextFormatter used by insurestat
// and a helper to install it on the standard logger.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTimestampFormat is the timestamp layout Setup configures.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// TextFormatter renders entries as
// "<timestamp> [LEVEL] [module] message key=value ..."
type TextFormatter struct {
	// Disable timestamp logging. useful when output is redirected to logging
	// system that already adds timestamps
	DisableTimestamp bool

	// Timestamp format to use for display when a full timestamp is printed
	TimestampFormat string

	// The name of the tool, prints before the log message, doesn't print if empty
	ModuleName string
}

// Format renders a single log entry.
// It is meant to be called from github.com/sirupsen/logrus.
func (f *TextFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if !f.DisableTimestamp {
		format := f.TimestampFormat
		if format == "" {
			format = time.RFC3339
		}
		b.WriteString(entry.Time.Format(format))
		b.WriteByte(' ')
	}

	b.WriteByte('[')
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")

	if f.ModuleName != "" {
		b.WriteByte('[')
		b.WriteString(f.ModuleName)
		b.WriteString("] ")
	}

	b.WriteString(entry.Message)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		appendValue(b, entry.Data[key])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func needsQuoting(text string) bool {
	if len(text) == 0 {
		return true
	}
	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == '/' || ch == '_') {
			return true
		}
	}
	return false
}

func appendValue(b *bytes.Buffer, value interface{}) {
	var s string
	switch value := value.(type) {
	case string:
		s = value
	case error:
		s = value.Error()
	default:
		fmt.Fprint(b, value)
		return
	}
	if needsQuoting(s) {
		fmt.Fprintf(b, "%q", s)
	} else {
		b.WriteString(s)
	}
}

// Setup installs the formatter on the standard logger, writing to out at the given level.
// level is one of panic|fatal|error|warning|info|debug.
func Setup(module, level string, out io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetFormatter(&TextFormatter{
		TimestampFormat: DefaultTimestampFormat,
		ModuleName:      module,
	})
	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}

package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTextFormatter(t *testing.T) {
	Convey("Given a formatter with a module name", t, func() {
		f := &TextFormatter{
			TimestampFormat: DefaultTimestampFormat,
			ModuleName:      "insurestat",
		}
		entry := &log.Entry{
			Time:    time.Date(2020, 1, 2, 3, 4, 5, 6000000, time.UTC),
			Level:   log.InfoLevel,
			Message: "loaded records",
			Data: log.Fields{
				"source":  "insurance.csv",
				"records": 1338,
			},
		}

		Convey("fields are sorted and the module is bracketed", func() {
			out, err := f.Format(entry)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, "2020-01-02 03:04:05.006 [INFO] [insurestat] loaded records records=1338 source=insurance.csv\n")
		})

		Convey("values with spaces and errors are quoted", func() {
			entry.Data = log.Fields{"error": errors.New("no such file")}
			f.DisableTimestamp = true
			out, err := f.Format(entry)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, "[INFO] [insurestat] loaded records error=\"no such file\"\n")
		})
	})
}

func TestSetup(t *testing.T) {
	Convey("When setting up the standard logger", t, func() {
		defer log.SetLevel(log.InfoLevel)
		defer log.SetOutput(os.Stderr)

		Convey("an unknown level is rejected", func() {
			So(Setup("insurestat", "loud", &bytes.Buffer{}), ShouldNotBeNil)
		})

		Convey("a valid level is applied and output goes to the writer", func() {
			var buf bytes.Buffer
			So(Setup("insurestat", "debug", &buf), ShouldBeNil)
			So(log.GetLevel(), ShouldEqual, log.DebugLevel)
			log.Debug("hello")
			So(buf.String(), ShouldContainSubstring, "[DEBUG] [insurestat] hello")
		})
	})
}

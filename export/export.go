// Package export publishes the statistics of a run to a Prometheus Pushgateway.
package export

import (
	"time"

	"github.com/grafana/insurestat/record"
	"github.com/grafana/insurestat/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "insurestat"

// Metrics holds one gauge per statistic in its own registry,
// so only these are pushed and not the process collectors.
type Metrics struct {
	registry *prometheus.Registry

	records     prometheus.Gauge
	average     prometheus.Gauge
	bySmoker    *prometheus.GaugeVec
	byRegion    *prometheus.GaugeVec
	correlation prometheus.Gauge
	lastRun     prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of records loaded.",
		}),
		average: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "average_charge",
			Help:      "Mean charge over all records.",
		}),
		bySmoker: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "average_charge_by_smoker",
			Help:      "Mean charge per smoker partition. 0 for an empty partition.",
		}, []string{"smoker"}),
		byRegion: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "average_charge_by_region",
			Help:      "Mean charge per region.",
		}, []string{"region"}),
		correlation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bmi_charges_correlation",
			Help:      "Pearson correlation between BMI and charges.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_seconds",
			Help:      "Unix time of the run that computed these statistics.",
		}),
	}
	m.registry.MustRegister(m.records, m.average, m.bySmoker, m.byRegion, m.correlation, m.lastRun)
	return m
}

// Set updates all gauges from r.
func (m *Metrics) Set(r report.Report, now time.Time) {
	m.records.Set(float64(r.Records))
	m.average.Set(r.AverageCharge)
	m.bySmoker.WithLabelValues(record.SmokerYes).Set(r.BySmoker.Smokers)
	m.bySmoker.WithLabelValues(record.SmokerNo).Set(r.BySmoker.NonSmokers)
	m.byRegion.Reset()
	for region, avg := range r.ByRegion {
		m.byRegion.WithLabelValues(region).Set(avg)
	}
	m.correlation.Set(r.Correlation)
	m.lastRun.Set(float64(now.UnixNano()) / 1e9)
}

// Push replaces the metrics of job on the pushgateway at url with the current gauges.
func (m *Metrics) Push(url, job string) error {
	return push.New(url, job).Gatherer(m.registry).Push()
}

// Package report gathers the statistics of an aggregator and renders them as text.
package report

import (
	"bufio"
	"io"
	"sort"
	"strconv"

	"github.com/grafana/insurestat/aggregator"
)

// Report holds every computed statistic of a run.
type Report struct {
	Records       int
	AverageCharge float64
	BySmoker      aggregator.SmokerAverages
	ByRegion      map[string]float64
	Correlation   float64

	// only set when the distribution was requested
	Summary *aggregator.Summary
}

// Build computes the report. It fails when there are no records to average.
func Build(agg *aggregator.Aggregator, withSummary bool) (Report, error) {
	avg, err := agg.AverageCharge()
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Records:       agg.Len(),
		AverageCharge: avg,
		BySmoker:      agg.AverageChargeBySmoker(),
		ByRegion:      agg.AverageChargeByRegion(),
		Correlation:   agg.CorrelationBMICharges(),
	}
	if withSummary {
		s, err := agg.ChargeSummary()
		if err != nil {
			return Report{}, err
		}
		r.Summary = &s
	}
	return r, nil
}

// Regions returns the region names of the report, sorted.
func (r Report) Regions() []string {
	regions := make([]string, 0, len(r.ByRegion))
	for region := range r.ByRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// formatValue renders v with the fewest digits that still parse back to v.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type kv struct {
	key string
	val string
}

func writeMap(w *bufio.Writer, pairs []kv) {
	w.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(p.key)
		w.WriteString(": ")
		w.WriteString(p.val)
	}
	w.WriteByte('}')
}

// WriteTo renders the report to w, one statistic per line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString("Average insurance charge: ")
	bw.WriteString(formatValue(r.AverageCharge))
	bw.WriteByte('\n')

	bw.WriteString("Average charge by smoker: ")
	writeMap(bw, []kv{
		{"smokers", formatValue(r.BySmoker.Smokers)},
		{"non_smokers", formatValue(r.BySmoker.NonSmokers)},
	})
	bw.WriteByte('\n')

	bw.WriteString("Average charge by region: ")
	regions := r.Regions()
	pairs := make([]kv, len(regions))
	for i, region := range regions {
		pairs[i] = kv{region, formatValue(r.ByRegion[region])}
	}
	writeMap(bw, pairs)
	bw.WriteByte('\n')

	bw.WriteString("Correlation between BMI and charges: ")
	bw.WriteString(formatValue(r.Correlation))
	bw.WriteByte('\n')

	if s := r.Summary; s != nil {
		bw.WriteString("Charge distribution: ")
		writeMap(bw, []kv{
			{"count", strconv.Itoa(s.Count)},
			{"min", formatValue(s.Min)},
			{"p50", formatValue(s.P50)},
			{"p90", formatValue(s.P90)},
			{"p99", formatValue(s.P99)},
			{"max", formatValue(s.Max)},
			{"stddev", formatValue(s.StdDev)},
		})
		bw.WriteByte('\n')
	}

	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

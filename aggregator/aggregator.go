// Package aggregator computes descriptive statistics over a collection of insurance records.
package aggregator

import (
	"math"

	"github.com/grafana/insurestat/errors"
	"github.com/grafana/insurestat/record"
)

// ErrEmptyInput is returned by statistics that are undefined over zero records.
var ErrEmptyInput = errors.NewEmptyInput("no records to aggregate")

// Aggregator wraps a record collection. It never modifies the records.
type Aggregator struct {
	records []record.Record
}

func New(records []record.Record) *Aggregator {
	return &Aggregator{records: records}
}

// Len returns the amount of records in the collection.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// SmokerAverages holds the mean charge of each smoker partition.
type SmokerAverages struct {
	Smokers    float64
	NonSmokers float64
}

// AverageCharge returns the arithmetic mean of the charges.
func (a *Aggregator) AverageCharge() (float64, error) {
	if len(a.records) == 0 {
		return 0, ErrEmptyInput
	}
	sum := float64(0)
	for _, r := range a.records {
		sum += r.Charges
	}
	return sum / float64(len(a.records)), nil
}

// AverageChargeBySmoker returns the mean charge of smokers and of non-smokers.
// A partition without records gets 0 rather than an error.
func (a *Aggregator) AverageChargeBySmoker() SmokerAverages {
	var smokers, nonSmokers mean
	for _, r := range a.records {
		switch {
		case r.IsSmoker():
			smokers.add(r.Charges)
		case r.IsNonSmoker():
			nonSmokers.add(r.Charges)
		}
	}
	return SmokerAverages{
		Smokers:    smokers.valueOrZero(),
		NonSmokers: nonSmokers.valueOrZero(),
	}
}

// AverageChargeByRegion returns the mean charge for each region present in the collection.
func (a *Aggregator) AverageChargeByRegion() map[string]float64 {
	groups := make(map[string]*mean)
	for _, r := range a.records {
		m, ok := groups[r.Region]
		if !ok {
			m = &mean{}
			groups[r.Region] = m
		}
		m.add(r.Charges)
	}
	out := make(map[string]float64, len(groups))
	for region, m := range groups {
		out[region] = m.valueOrZero()
	}
	return out
}

// CorrelationBMICharges returns the Pearson correlation coefficient between BMI and charges.
// When either variable has zero variance the coefficient is undefined and 0 is returned.
func (a *Aggregator) CorrelationBMICharges() float64 {
	return pearson(a.records, func(r record.Record) float64 { return r.BMI }, func(r record.Record) float64 { return r.Charges })
}

// pearson computes the correlation between x and y in two passes:
// first the means, then the centered sums of products and squares.
func pearson(records []record.Record, x, y func(record.Record) float64) float64 {
	n := len(records)
	if n == 0 {
		return 0
	}
	var sumX, sumY float64
	for _, r := range records {
		sumX += x(r)
		sumY += y(r)
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, sqX, sqY float64
	for _, r := range records {
		dx := x(r) - meanX
		dy := y(r) - meanY
		num += dx * dy
		sqX += dx * dx
		sqY += dy * dy
	}
	den := math.Sqrt(sqX * sqY)
	if den == 0 {
		return 0
	}
	corr := num / den
	// rounding can push a perfect correlation just past the bounds
	return math.Max(-1, math.Min(1, corr))
}

// mean accumulates a running sum and count
type mean struct {
	sum float64
	cnt int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.cnt++
}

func (m mean) valueOrZero() float64 {
	if m.cnt == 0 {
		return 0
	}
	return m.sum / float64(m.cnt)
}

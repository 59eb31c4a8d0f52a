package aggregator

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of charges.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population standard deviation
	P50    float64
	P90    float64
	P99    float64
}

// ChargeSummary returns the distribution of the charges.
// Percentiles use the empirical CDF, so they are always observed charges.
func (a *Aggregator) ChargeSummary() (Summary, error) {
	if len(a.records) == 0 {
		return Summary{}, ErrEmptyInput
	}
	charges := make([]float64, len(a.records))
	for i, r := range a.records {
		charges[i] = r.Charges
	}
	sort.Float64s(charges)

	mean, variance := stat.PopMeanVariance(charges, nil)
	s := Summary{
		Count: len(charges),
		Min:   charges[0],
		Max:   charges[len(charges)-1],
		Mean:  mean,
		P50:   stat.Quantile(0.50, stat.Empirical, charges, nil),
		P90:   stat.Quantile(0.90, stat.Empirical, charges, nil),
		P99:   stat.Quantile(0.99, stat.Empirical, charges, nil),
	}
	if variance > 0 {
		s.StdDev = math.Sqrt(variance)
	}
	return s, nil
}

package aggregator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/grafana/insurestat/record"
)

func TestChargeSummary(t *testing.T) {
	type testCase struct {
		title   string
		charges []float64
		exp     Summary
	}

	testCases := []testCase{
		{
			title:   "single charge",
			charges: []float64{16884.92},
			exp: Summary{
				Count: 1, Min: 16884.92, Max: 16884.92, Mean: 16884.92,
				P50: 16884.92, P90: 16884.92, P99: 16884.92,
			},
		},
		{
			title:   "one to ten, unsorted",
			charges: []float64{7, 3, 10, 1, 5, 2, 9, 4, 8, 6},
			exp: Summary{
				Count: 10, Min: 1, Max: 10, Mean: 5.5,
				StdDev: math.Sqrt(8.25),
				P50:    5, P90: 9, P99: 10,
			},
		},
	}

	for _, c := range testCases {
		t.Run(c.title, func(t *testing.T) {
			records := make([]record.Record, len(c.charges))
			for i, v := range c.charges {
				records[i] = record.Record{Charges: v}
			}
			got, err := New(records).ChargeSummary()
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(c.exp, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

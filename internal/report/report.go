// Package report turns workload measurements into a comparison table.
//
// Every non-baseline workload is reported as a percentage difference from
// the sequential dependent baseline:
//
//	diff = (baseline - t) / baseline * 100
//
// A positive diff means the workload finished faster than the baseline.
package report

import (
	"errors"
	"math"

	"github.com/randomizedcoder/rob-benchmarks/internal/runner"
	"github.com/randomizedcoder/rob-benchmarks/internal/workload"
)

// ErrZeroBaseline is returned when the baseline measured as zero microseconds.
var ErrZeroBaseline = errors.New("report: baseline time is zero")

// PercentDiff returns (baseline - t) / baseline * 100, rounded to one
// decimal place.
func PercentDiff(baseline, t int64) (float64, error) {
	if baseline == 0 {
		return 0, ErrZeroBaseline
	}
	d := float64(baseline-t) / float64(baseline) * 100
	return math.Round(d*10) / 10, nil
}

// Row is one line of the comparison table.
type Row struct {
	Label    string
	Micros   int64
	Status   string
	Baseline bool

	// Diff is valid only when HasDiff is set. It is never set on the
	// baseline row, and not set when the baseline measured as zero.
	Diff    float64
	HasDiff bool
}

// Build creates one row per result, in order.
//
// The baseline is the result for workload.Baseline, or the last result
// if that case was not measured.
func Build(results []runner.Result) []Row {
	if len(results) == 0 {
		return nil
	}

	want := workload.Baseline().Ordinal
	base := len(results) - 1
	for i, r := range results {
		if r.Case.Ordinal == want {
			base = i
			break
		}
	}
	baseMicros := results[base].Micros

	rows := make([]Row, len(results))
	for i, r := range results {
		row := Row{
			Label:    r.Case.Label(),
			Micros:   r.Micros,
			Status:   string(r.Case.Status),
			Baseline: i == base,
		}
		if !row.Baseline {
			if d, err := PercentDiff(baseMicros, r.Micros); err == nil {
				row.Diff = d
				row.HasDiff = true
			}
		}
		rows[i] = row
	}
	return rows
}

// Package metric computes descriptive statistics over a plotted series.
package metric

import (
	"github.com/raykavin/yieldchart/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a value series
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Change float64 `json:"change"` // Last - First
}

// Summarize computes the summary of values; an empty series yields the zero Summary
func Summarize(values core.Series[float64]) Summary {
	if values.Length() == 0 {
		return Summary{}
	}

	mean, stdDev := stat.MeanStdDev(values, nil)
	if values.Length() == 1 {
		stdDev = 0
	}

	first, last := values[0], values.Last(0)

	return Summary{
		Count:  values.Length(),
		Mean:   mean,
		StdDev: stdDev,
		Min:    values.Min(),
		Max:    values.Max(),
		First:  first,
		Last:   last,
		Change: last - first,
	}
}

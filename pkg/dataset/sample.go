// Package dataset holds the built-in series plotted by the chart.
package dataset

import "github.com/raykavin/yieldchart/pkg/core"

// Name is the series label used in the chart legend and tooltip
const Name = "股息率"

// CSI300DividendYield returns the simulated monthly dividend yield of the
// CSI 300 index, oldest first. Every call returns a fresh slice.
func CSI300DividendYield() []core.DataPoint {
	return []core.DataPoint{
		{Date: "2023-01", Value: 2.85},
		{Date: "2023-02", Value: 2.78},
		{Date: "2023-03", Value: 2.92},
		{Date: "2023-04", Value: 2.88},
		{Date: "2023-05", Value: 2.95},
		{Date: "2023-06", Value: 3.02},
		{Date: "2023-07", Value: 3.10},
		{Date: "2023-08", Value: 3.05},
		{Date: "2023-09", Value: 3.12},
		{Date: "2023-10", Value: 3.08},
	}
}

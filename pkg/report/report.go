// Package report prints a terminal summary of a plotted series.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/metric"
	"github.com/samber/lo"
)

const histogramBins = 5

// Write prints the points as a table followed by summary statistics and a
// histogram of the values. unit is appended to every printed value.
func Write(w io.Writer, points []core.DataPoint, unit string) error {
	data, err := core.NewSeriesData(points)
	if err != nil {
		return err
	}

	values := data.Values()
	summary := metric.Summarize(values)
	precision := lo.Max(lo.Map(values, func(v float64, _ int) int64 { return core.NumDecPlaces(v) }))
	format := func(v float64) string {
		return fmt.Sprintf("%.*f%s", precision, v, unit)
	}

	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Date", "Value", "Change"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	for i := 0; i < data.Len(); i++ {
		point, _ := data.Point(i)
		change := "-"
		if i > 0 {
			change = fmt.Sprintf("%+.*f", precision, point.Value-values[i-1])
		}
		table.Append([]string{point.Date, format(point.Value), change})
	}

	table.SetFooter([]string{"MEAN", format(summary.Mean), fmt.Sprintf("%+.*f", precision, summary.Change)})
	table.Render()

	fmt.Fprintln(buffer)
	fmt.Fprintln(buffer, "------ SUMMARY -------")
	fmt.Fprintf(buffer, "POINTS:  %d\n", summary.Count)
	fmt.Fprintf(buffer, "MIN:     %s\n", format(summary.Min))
	fmt.Fprintf(buffer, "MAX:     %s\n", format(summary.Max))
	fmt.Fprintf(buffer, "STDDEV:  %.4f\n", summary.StdDev)
	fmt.Fprintln(buffer)

	fmt.Fprintln(buffer, "------ DISTRIBUTION -------")
	hist := histogram.Hist(histogramBins, values)
	if err := histogram.Fprint(buffer, hist, histogram.Linear(10)); err != nil {
		return fmt.Errorf("failed to print histogram: %w", err)
	}

	_, err = w.Write(buffer.Bytes())
	return err
}

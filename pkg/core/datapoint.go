package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
)

// DataPoint is one observation of the plotted metric
type DataPoint struct {
	Date  string  `json:"date"`  // period label, e.g. 2023-01
	Value float64 `json:"value"` // percentage
}

// SeriesData is the axis-bound view over an ordered set of data points.
// Labels[i] always pairs with Values[i].
type SeriesData struct {
	labels []string
	values Series[float64]
}

// NewSeriesData projects points into positionally aligned labels and values.
// Order is kept as given and duplicates are not removed.
func NewSeriesData(points []DataPoint) (SeriesData, error) {
	if err := ValidatePoints(points); err != nil {
		return SeriesData{}, err
	}

	return SeriesData{
		labels: lo.Map(points, func(p DataPoint, _ int) string { return p.Date }),
		values: lo.Map(points, func(p DataPoint, _ int) float64 { return p.Value }),
	}, nil
}

// ValidatePoints rejects nil, empty and malformed datasets
func ValidatePoints(points []DataPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty dataset", ErrConfiguration)
	}

	for i, p := range points {
		if strings.TrimSpace(p.Date) == "" {
			return fmt.Errorf("%w: point %d has no date", ErrConfiguration, i)
		}
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return fmt.Errorf("%w: point %d (%s) has non-numeric value", ErrConfiguration, i, p.Date)
		}
	}

	return nil
}

// Len returns the number of aligned pairs
func (s SeriesData) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the label sequence
func (s SeriesData) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Values returns a copy of the value sequence
func (s SeriesData) Values() Series[float64] {
	return s.values.Clone()
}

// Point returns the pair stored at index i
func (s SeriesData) Point(i int) (DataPoint, bool) {
	if i < 0 || i >= len(s.labels) {
		return DataPoint{}, false
	}
	return DataPoint{Date: s.labels[i], Value: s.values[i]}, true
}

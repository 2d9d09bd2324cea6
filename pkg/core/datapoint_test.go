package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSeriesData(t *testing.T) {
	points := []DataPoint{
		{Date: "2023-01", Value: 2.85},
		{Date: "2023-02", Value: 2.78},
		{Date: "2023-03", Value: 2.92},
	}

	data, err := NewSeriesData(points)
	require.NoError(t, err)
	require.Equal(t, []string{"2023-01", "2023-02", "2023-03"}, data.Labels())
	require.Equal(t, Series[float64]{2.85, 2.78, 2.92}, data.Values())
	require.Equal(t, len(points), data.Len())

	for i, p := range points {
		got, ok := data.Point(i)
		require.True(t, ok)
		require.Equal(t, p, got)
	}

	_, ok := data.Point(len(points))
	require.False(t, ok)
	_, ok = data.Point(-1)
	require.False(t, ok)
}

func TestNewSeriesData_KeepsOrderAndDuplicates(t *testing.T) {
	points := []DataPoint{
		{Date: "2023-03", Value: 1},
		{Date: "2023-01", Value: 2},
		{Date: "2023-03", Value: 1},
	}

	data, err := NewSeriesData(points)
	require.NoError(t, err)
	require.Equal(t, []string{"2023-03", "2023-01", "2023-03"}, data.Labels())
	require.Equal(t, Series[float64]{1, 2, 1}, data.Values())
}

func TestNewSeriesData_CopiesAreIndependent(t *testing.T) {
	data, err := NewSeriesData([]DataPoint{{Date: "a", Value: 1}})
	require.NoError(t, err)

	labels := data.Labels()
	labels[0] = "changed"
	values := data.Values()
	values[0] = 42

	require.Equal(t, []string{"a"}, data.Labels())
	require.Equal(t, Series[float64]{1}, data.Values())
}

func TestValidatePoints(t *testing.T) {
	tests := []struct {
		name   string
		points []DataPoint
	}{
		{"nil", nil},
		{"empty", []DataPoint{}},
		{"blank date", []DataPoint{{Date: " ", Value: 1}}},
		{"nan", []DataPoint{{Date: "2023-01", Value: math.NaN()}}},
		{"inf", []DataPoint{{Date: "2023-01", Value: 1}, {Date: "2023-02", Value: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSeriesData(tt.points)
			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestSeries(t *testing.T) {
	s := Series[float64]{2.85, 2.78, 3.12, 3.08}
	require.Equal(t, 4, s.Length())
	require.Equal(t, 3.08, s.Last(0))
	require.Equal(t, 3.12, s.Last(1))
	require.Equal(t, 2.78, s.Min())
	require.Equal(t, 3.12, s.Max())

	var empty Series[float64]
	require.Zero(t, empty.Min())
	require.Zero(t, empty.Max())
	require.Nil(t, empty.Clone())

	require.Equal(t, int64(2), NumDecPlaces(2.85))
	require.Equal(t, int64(1), NumDecPlaces(3.10))
	require.Equal(t, int64(0), NumDecPlaces(3))
}

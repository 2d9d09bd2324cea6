package core

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Series is an ordered sequence of values bound to a chart axis
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// Min returns the smallest value; zero value on an empty series
func (s Series[T]) Min() T {
	var lowest T
	for i, v := range s {
		if i == 0 || v < lowest {
			lowest = v
		}
	}
	return lowest
}

// Max returns the largest value; zero value on an empty series
func (s Series[T]) Max() T {
	var highest T
	for i, v := range s {
		if i == 0 || v > highest {
			highest = v
		}
	}
	return highest
}

// Clone returns a copy that shares no memory with s
func (s Series[T]) Clone() Series[T] {
	if s == nil {
		return nil
	}
	out := make(Series[T], len(s))
	copy(out, s)
	return out
}

// NumDecPlaces returns the number of decimal places in a float64
func NumDecPlaces(v float64) int64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return int64(len(s) - i - 1)
	}
	return 0
}

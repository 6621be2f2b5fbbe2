package chartmark

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var ErrEmptySeries = errors.New("series has no values")

// An ordered, read-only sequence of values with precomputed bounds. The
// bounds define the value axis: with a zero (or positive) minimum the
// baseline represents 0, otherwise it represents the minimum.
type ValueSeries struct {
	values []float64
	min    float64
	max    float64
}

// Creates a series from any numeric slice. The input is copied, so the
// caller may keep mutating its slice.
func NewValueSeries[T Number](values []T) (ValueSeries, error) {
	if len(values) == 0 {
		return ValueSeries{}, ErrEmptySeries
	}

	s := ValueSeries{values: make([]float64, len(values))}
	for i, v := range values {
		f := float64(v)
		if !isFinite(f) {
			return ValueSeries{}, fmt.Errorf("value at index %d is not finite: %v", i, f)
		}

		s.values[i] = f
		if i == 0 || f < s.min {
			s.min = f
		}
		if i == 0 || f > s.max {
			s.max = f
		}
	}

	return s, nil
}

func (s ValueSeries) Len() int {
	return len(s.values)
}

func (s ValueSeries) Min() float64 {
	return s.min
}

func (s ValueSeries) Max() float64 {
	return s.max
}

// Range is Max - Min. Zero means the series is flat and every value maps to
// the baseline.
func (s ValueSeries) Range() float64 {
	return s.max - s.min
}

// Returns the value at index, or false if the index is out of range.
func (s ValueSeries) At(index int) (float64, bool) {
	if index < 0 || index >= len(s.values) {
		return 0, false
	}
	return s.values[index], true
}

func (s ValueSeries) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Returns a copy with the axis bounds overridden. A nil bound keeps the data
// derived one. This is how YMin/YMax from the chart style are applied.
func (s ValueSeries) WithRange(min, max *float64) ValueSeries {
	if min != nil {
		s.min = *min
	}
	if max != nil {
		s.max = *max
	}
	return s
}

// Decorations are only laid out for charts with more than two points.
func HasEnoughData(s ValueSeries) bool {
	return s.Len() > 2
}

// A rolling window of the most recent values, for live charts that only show
// the latest N samples. Not safe for concurrent use.
type SeriesWindow struct {
	buffer *ring[float64]
	logger logrus.FieldLogger
}

func NewSeriesWindow(capacity int) *SeriesWindow {
	return &SeriesWindow{
		buffer: newRing[float64](capacity),
		logger: logrus.WithField("tag", "SeriesWindow"),
	}
}

// Non-finite values are dropped, they cannot be placed on an axis.
func (w *SeriesWindow) Push(v float64) {
	if !isFinite(v) {
		w.logger.WithField("value", v).Warn("dropping non-finite value")
		return
	}

	w.buffer.Push(v)
}

func (w *SeriesWindow) Len() int {
	return w.buffer.Len()
}

func (w *SeriesWindow) Snapshot() (ValueSeries, error) {
	return NewValueSeries(w.buffer.ReadAllOrdered())
}

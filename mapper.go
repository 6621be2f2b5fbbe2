package chartmark

import "errors"

var ErrInvalidSurface = errors.New("drawing surface must have positive width and height")

// The rectangle a chart component is laid out into for one pass, in pixels.
// The origin is the top left corner and y grows downwards.
type DrawingSurface struct {
	Width  float64
	Height float64
}

func (d DrawingSurface) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

func (d DrawingSurface) Validate() error {
	if !d.Valid() {
		return ErrInvalidSurface
	}
	return nil
}

type Point2D struct {
	X float64
	Y float64
}

type LineSegment struct {
	From Point2D
	To   Point2D
}

// Returns the segment cut to the first fraction of its length, measured from
// From. The fraction is clamped to [0, 1].
func (l LineSegment) Trim(fraction float64) LineSegment {
	fraction = Clamp(fraction, 0, 1)
	return LineSegment{
		From: l.From,
		To: Point2D{
			X: l.From.X + (l.To.X-l.From.X)*fraction,
			Y: l.From.Y + (l.To.Y-l.From.Y)*fraction,
		},
	}
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

type MarkerRequest struct {
	Index  int
	Radius float64
}

// How index slots are placed along the category axis.
type AbscissaDistribution int

const (
	// Each index owns an equal slot and is drawn at its centre (bar charts).
	SlotCentred AbscissaDistribution = iota
	// First index at the leading edge, last at the trailing edge (line charts).
	EdgeAligned
)

// Distance of value from the baseline along a value axis of the given extent.
//
// When the minimum is negative the baseline represents the minimum so that
// negative values sit below zero instead of being clipped; otherwise it
// represents 0. A zero-height range collapses everything onto the baseline.
func valueOffset(value, min, max, extent float64) float64 {
	var offset float64
	if min < 0 {
		if max == min {
			return 0
		}
		offset = (value - min) * (extent / (max - min))
	} else {
		if max == 0 || max == min {
			return 0
		}
		offset = value * (extent / max)
	}

	if !isFinite(offset) {
		return 0
	}
	return offset
}

func slotCentre(index, count int, extent float64) float64 {
	section := extent / float64(count)
	return float64(index)*section + section/2
}

// Maps the value at index to a pixel position. Returns false when the index
// is out of range or the surface is empty; the caller draws nothing for that
// marker.
func MapIndexToPoint(index int, series ValueSeries, surface DrawingSurface) (Point2D, bool) {
	if !surface.Valid() {
		return Point2D{}, false
	}

	value, ok := series.At(index)
	if !ok {
		return Point2D{}, false
	}

	return Point2D{
		X: slotCentre(index, series.Len(), surface.Width),
		Y: surface.Height - valueOffset(value, series.Min(), series.Max(), surface.Height),
	}, true
}

// The bar-axis analog of MapIndexToPoint: slots run top to bottom and values
// grow from the left edge.
func mapIndexToHorizontalPoint(index int, series ValueSeries, surface DrawingSurface) (Point2D, bool) {
	if !surface.Valid() {
		return Point2D{}, false
	}

	value, ok := series.At(index)
	if !ok {
		return Point2D{}, false
	}

	return Point2D{
		X: valueOffset(value, series.Min(), series.Max(), surface.Width),
		Y: slotCentre(index, series.Len(), surface.Height),
	}, true
}

// Builds the abscissa marker for index: a segment from the baseline, moved
// in by inset (usually the grid line width), to the mapped value.
func MapMarkerLine(index int, series ValueSeries, surface DrawingSurface, orientation Orientation, inset float64) (LineSegment, bool) {
	if orientation == Horizontal {
		point, ok := mapIndexToHorizontalPoint(index, series, surface)
		if !ok {
			return LineSegment{}, false
		}

		return LineSegment{
			From: Point2D{X: inset, Y: point.Y},
			To:   point,
		}, true
	}

	point, ok := MapIndexToPoint(index, series, surface)
	if !ok {
		return LineSegment{}, false
	}

	return LineSegment{
		From: Point2D{X: point.X, Y: surface.Height - inset},
		To:   point,
	}, true
}

// Bounding box of the circle drawn for a point marker. insetAmount shrinks
// the radius, as when a stroke is drawn inside the shape.
func PointMarkerBounds(request MarkerRequest, series ValueSeries, surface DrawingSurface, insetAmount float64) (Rect, bool) {
	point, ok := MapIndexToPoint(request.Index, series, surface)
	if !ok {
		return Rect{}, false
	}

	r := Max(request.Radius-insetAmount, 0)
	return Rect{
		X:      point.X - r,
		Y:      point.Y - r,
		Width:  r * 2,
		Height: r * 2,
	}, true
}

// A line across the whole surface at a data value. The value axis runs from
// min (baseline) to min+valueRange.
func ValueMarkerLine(value, min, valueRange float64, surface DrawingSurface, orientation Orientation) LineSegment {
	if orientation == Vertical {
		x := rangeOffset(value, min, valueRange, surface.Width)
		return LineSegment{
			From: Point2D{X: x, Y: 0},
			To:   Point2D{X: x, Y: surface.Height},
		}
	}

	y := surface.Height - rangeOffset(value, min, valueRange, surface.Height)
	return LineSegment{
		From: Point2D{X: 0, Y: y},
		To:   Point2D{X: surface.Width, Y: y},
	}
}

func rangeOffset(value, min, valueRange, extent float64) float64 {
	if valueRange == 0 {
		return 0
	}

	offset := (value - min) * (extent / valueRange)
	if !isFinite(offset) {
		return 0
	}
	return offset
}

// A line across the whole surface at a category index.
func AbscissaMarkerLine(index, count int, surface DrawingSurface, orientation Orientation, distribution AbscissaDistribution) (LineSegment, bool) {
	if index < 0 || index >= count {
		return LineSegment{}, false
	}

	extent := surface.Width
	if orientation == Horizontal {
		extent = surface.Height
	}

	var pos float64
	switch {
	case distribution == SlotCentred:
		pos = slotCentre(index, count, extent)
	case count == 1:
		pos = extent / 2
	default:
		pos = float64(index) * extent / float64(count-1)
	}

	if orientation == Horizontal {
		return LineSegment{
			From: Point2D{X: 0, Y: pos},
			To:   Point2D{X: surface.Width, Y: pos},
		}, true
	}

	return LineSegment{
		From: Point2D{X: pos, Y: 0},
		To:   Point2D{X: pos, Y: surface.Height},
	}, true
}

package chartmark

type GridDistribution int

const (
	// Lines are spread edge to edge: first at 0, last at the far edge.
	EqualSpacing GridDistribution = iota
	// Each line sits in the middle of its own equal slot.
	EqualProportion
)

// Vertical grid lines along the x axis.
func XAxisGridLines(style GridStyle, surface DrawingSurface, distribution GridDistribution) []LineSegment {
	n := style.NumberOfLines
	if n <= 0 || !surface.Valid() {
		return nil
	}

	lines := make([]LineSegment, 0, n)
	for i := 0; i < n; i++ {
		var x float64
		switch {
		case distribution == EqualProportion:
			x = slotCentre(i, n, surface.Width)
		case n == 1:
			x = 0
		default:
			x = float64(i) * surface.Width / float64(n-1)
		}

		lines = append(lines, LineSegment{
			From: Point2D{X: x, Y: 0},
			To:   Point2D{X: x, Y: surface.Height},
		})
	}

	return lines
}

// Horizontal grid lines along the y axis, top to bottom.
func YAxisGridLines(style GridStyle, surface DrawingSurface) []LineSegment {
	n := style.NumberOfLines
	if n <= 0 || !surface.Valid() {
		return nil
	}

	lines := make([]LineSegment, 0, n)
	for i := 0; i < n; i++ {
		y := 0.0
		if n > 1 {
			y = float64(i) * surface.Height / float64(n-1)
		}

		lines = append(lines, LineSegment{
			From: Point2D{X: 0, Y: y},
			To:   Point2D{X: surface.Width, Y: y},
		})
	}

	return lines
}

// One vertical line per bar, through the bar's centre. visible[i] == false
// hides the line for bar i; a short or nil slice shows the rest.
func BarGridLines(series ValueSeries, visible []bool, surface DrawingSurface) []LineSegment {
	if !HasEnoughData(series) || !surface.Valid() {
		return nil
	}

	indices := make([]int, series.Len())
	for i := range indices {
		indices[i] = i
	}

	indices = Filter(indices, func(i int) bool {
		return i >= len(visible) || visible[i]
	})

	lines := make([]LineSegment, 0, len(indices))
	for _, i := range indices {
		line, _ := AbscissaMarkerLine(i, series.Len(), surface, Vertical, SlotCentred)
		lines = append(lines, line)
	}

	return lines
}

package chartmark

// Centre of a floating info box that follows the touch location along one
// axis. The box is kept fully inside the chart; a box wider than the chart is
// centred on it.
func BoxLocation(touch, boxSize, chartSize float64) float64 {
	half := boxSize / 2
	if boxSize >= chartSize {
		return chartSize / 2
	}

	return Clamp(touch, half, chartSize-half)
}

// Index of the data point nearest to a touch along the category axis, for
// slot centred charts. Touches outside the surface snap to the first or last
// point.
func NearestIndex(touch float64, count int, extent float64) (int, bool) {
	if count <= 0 || extent <= 0 {
		return 0, false
	}

	index := int(touch / (extent / float64(count)))
	return Clamp(index, 0, count-1), true
}

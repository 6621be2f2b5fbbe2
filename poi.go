package chartmark

import (
	"github.com/sirupsen/logrus"
)

// One point of interest on a bar chart: a line from the baseline to the bar
// top with a circle on the end.
type POIMark struct {
	Index int
	Line  LineSegment
	Point Rect

	// Opacity of the point, equal to the animation progress.
	Opacity float64
}

// Lays out the points of interest for indices, in the order given. progress
// is the appear animation value in [0, 1]; lines grow with it and points fade
// in with it. With animation disabled everything is fully drawn.
//
// Indices that do not exist in the series are skipped.
func BarPOIMarks(series ValueSeries, surface DrawingSurface, indices []int, style ChartStyle, progress float64) []POIMark {
	if !HasEnoughData(series) || len(indices) == 0 {
		return nil
	}

	logger := logrus.WithField("tag", "POIOverlay")

	if style.DisableAnimation {
		progress = 1
	}
	progress = Clamp(progress, 0, 1)

	series = style.Apply(series)
	radius := style.PointStyle.PointSize / 2

	marks := make([]POIMark, 0, len(indices))
	for _, index := range indices {
		line, ok := MapMarkerLine(index, series, surface, Vertical, style.YAxisGrid.LineWidth)
		if !ok {
			logger.WithFields(logrus.Fields{
				"index":  index,
				"length": series.Len(),
			}).Debug("skipping point of interest outside the series")
			continue
		}

		point, _ := PointMarkerBounds(MarkerRequest{Index: index, Radius: radius}, series, surface, 0)

		marks = append(marks, POIMark{
			Index:   index,
			Line:    line.Trim(progress),
			Point:   point,
			Opacity: progress,
		})
	}

	return marks
}

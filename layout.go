package chartmark

import (
	"github.com/sirupsen/logrus"
)

var layoutLogger = logrus.WithField("tag", "Layout")

// Which optional decorations the chart carries. Titles are taken from the
// style and get a band only when non-empty.
type LayoutOptions struct {
	XAxisLabels bool
	YAxisLabels bool

	// Bars run left to right; the info box band goes beside the plot.
	Horizontal bool
}

// Regions of one chart for one layout pass. A zero Rect means the region is
// not shown.
type Layout struct {
	Plot        Rect
	XAxisLabels Rect
	XAxisTitle  Rect
	YAxisLabels Rect
	YAxisTitle  Rect
	InfoBox     Rect
}

type band struct {
	size   float64
	target *Rect
	name   string
}

// Splits the surface into the plot area and its decoration bands according to
// the style. Charts with two or fewer points get the whole surface as plot.
func Compose(style ChartStyle, series ValueSeries, surface DrawingSurface, options LayoutOptions) (Layout, error) {
	if err := surface.Validate(); err != nil {
		return Layout{}, err
	}

	inner := Rect{Width: surface.Width, Height: surface.Height}
	if !HasEnoughData(series) {
		return Layout{Plot: inner}, nil
	}

	var layout Layout

	if style.InfoBoxPlacement.Kind == InfoBoxBand {
		if options.Horizontal {
			if style.InfoBoxWidth < inner.Width {
				layout.InfoBox = Rect{X: inner.X + inner.Width - style.InfoBoxWidth, Y: inner.Y, Width: style.InfoBoxWidth, Height: inner.Height}
				inner.Width -= style.InfoBoxWidth
			} else {
				dropBand("InfoBox", style.InfoBoxWidth, inner.Width)
			}
		} else {
			if style.InfoBoxHeight < inner.Height {
				layout.InfoBox = Rect{X: inner.X, Y: inner.Y, Width: inner.Width, Height: style.InfoBoxHeight}
				inner.Y += style.InfoBoxHeight
				inner.Height -= style.InfoBoxHeight
			} else {
				dropBand("InfoBox", style.InfoBoxHeight, inner.Height)
			}
		}
	}

	// Bands are listed nearest to the plot first.
	var xBands, yBands []band
	if options.XAxisLabels {
		xBands = append(xBands, band{style.XAxisLabelHeight + style.XAxisLabelPadding, &layout.XAxisLabels, "XAxisLabels"})
		if style.XTitle != "" {
			xBands = append(xBands, band{style.TitleSize, &layout.XAxisTitle, "XAxisTitle"})
		}
	}
	if options.YAxisLabels {
		yBands = append(yBands, band{style.YAxisLabelWidth + style.YAxisLabelPadding, &layout.YAxisLabels, "YAxisLabels"})
		if style.YTitle != "" {
			yBands = append(yBands, band{style.TitleSize, &layout.YAxisTitle, "YAxisTitle"})
		}
	}

	xBands = fitBands(xBands, inner.Height)
	yBands = fitBands(yBands, inner.Width)

	xTotal := totalSize(xBands)
	yTotal := totalSize(yBands)

	layout.Plot = Rect{X: inner.X, Y: inner.Y, Width: inner.Width - yTotal, Height: inner.Height - xTotal}
	if style.XAxisLabelPosition == XAxisLabelTop {
		layout.Plot.Y += xTotal
	}
	if style.YAxisLabelPosition == YAxisLabelLeading {
		layout.Plot.X += yTotal
	}

	plot := layout.Plot
	offset := 0.0
	for _, b := range xBands {
		y := plot.Y + plot.Height + offset
		if style.XAxisLabelPosition == XAxisLabelTop {
			y = plot.Y - offset - b.size
		}
		*b.target = Rect{X: plot.X, Y: y, Width: plot.Width, Height: b.size}
		offset += b.size
	}

	offset = 0
	for _, b := range yBands {
		x := plot.X + plot.Width + offset
		if style.YAxisLabelPosition == YAxisLabelLeading {
			x = plot.X - offset - b.size
		}
		*b.target = Rect{X: x, Y: plot.Y, Width: b.size, Height: plot.Height}
		offset += b.size
	}

	return layout, nil
}

// Keeps bands, nearest first, while the plot still has room left.
func fitBands(bands []band, available float64) []band {
	total := 0.0
	for i, b := range bands {
		if total+b.size >= available {
			for _, dropped := range bands[i:] {
				dropBand(dropped.name, dropped.size, available-total)
			}
			return bands[:i]
		}
		total += b.size
	}
	return bands
}

func totalSize(bands []band) float64 {
	total := 0.0
	for _, b := range bands {
		total += b.size
	}
	return total
}

func dropBand(name string, size, available float64) {
	layoutLogger.WithFields(logrus.Fields{
		"band":      name,
		"size":      size,
		"available": available,
	}).Warn("not enough room for band, dropping it")
}

package chartmark

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Converts an axis value into label text.
type LabelFormatter func(value float64) string

// Formats with a printf style verb, e.g. "%.0f".
func SpecifierFormatter(specifier string) LabelFormatter {
	return func(value float64) string {
		return fmt.Sprintf(specifier, value)
	}
}

// Formats with the grouping and decimal separators of the given locale and a
// fixed number of decimals.
func LocaleFormatter(tag language.Tag, decimals int) LabelFormatter {
	printer := message.NewPrinter(tag)
	return func(value float64) string {
		return printer.Sprint(number.Decimal(value, number.Scale(decimals)))
	}
}

type AxisLabel struct {
	Text     string
	Value    float64
	Position Point2D
}

// n values evenly spread over the series' axis, ascending.
func YAxisLabelValues(series ValueSeries, n int) []float64 {
	if n <= 0 {
		return nil
	}

	min := series.Min()
	if min > 0 {
		// The baseline is 0 for non-negative series.
		min = 0
	}

	values := make([]float64, n)
	if n == 1 {
		values[0] = min
		return values
	}

	step := (series.Max() - min) / float64(n-1)
	for i := range values {
		values[i] = min + float64(i)*step
	}

	return values
}

// Labels for the y axis. Position.Y is the vertical centre of each label on
// the surface; Position.X is 0, the label band is positioned by the layout.
func YAxisLabels(series ValueSeries, surface DrawingSurface, n int, formatter LabelFormatter) []AxisLabel {
	if !surface.Valid() {
		return nil
	}

	if formatter == nil {
		formatter = SpecifierFormatter("%.0f")
	}

	values := YAxisLabelValues(series, n)
	labels := make([]AxisLabel, 0, len(values))
	for _, v := range values {
		labels = append(labels, AxisLabel{
			Text:     formatter(v),
			Value:    v,
			Position: Point2D{X: 0, Y: surface.Height - valueOffset(v, series.Min(), series.Max(), surface.Height)},
		})
	}

	return labels
}

// Labels for the x axis, one per slot, centred horizontally in the slot.
func XAxisLabels(texts []string, surface DrawingSurface) []AxisLabel {
	if len(texts) == 0 || !surface.Valid() {
		return nil
	}

	labels := make([]AxisLabel, 0, len(texts))
	for i, text := range texts {
		labels = append(labels, AxisLabel{
			Text:     text,
			Value:    float64(i),
			Position: Point2D{X: slotCentre(i, len(texts), surface.Width), Y: 0},
		})
	}

	return labels
}

package chartmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStyle = errors.New("invalid chart style")

type GridStyle struct {
	NumberOfLines int
	LineWidth     float64
}

type PointStyle struct {
	PointSize float64
	LineWidth float64
}

type XAxisLabelPosition int

const (
	XAxisLabelBottom XAxisLabelPosition = iota
	XAxisLabelTop
)

type YAxisLabelPosition int

const (
	YAxisLabelLeading YAxisLabelPosition = iota
	YAxisLabelTrailing
)

type InfoBoxKind int

const (
	InfoBoxFloating InfoBoxKind = iota
	InfoBoxBand
	InfoBoxHeader
)

// Where the touch overlay information is shown. Static only applies to
// InfoBoxBand: the box stays put rather than following the touch.
type InfoBoxPlacement struct {
	Kind   InfoBoxKind
	Static bool `json:",omitempty"`
}

type ChartStyle struct {
	Title  string `json:",omitempty"`
	XTitle string `json:",omitempty"`
	YTitle string `json:",omitempty"`

	// Override the data derived value axis bounds.
	YMin *float64 `json:",omitempty"`
	YMax *float64 `json:",omitempty"`

	XAxisGrid  GridStyle
	YAxisGrid  GridStyle
	PointStyle PointStyle

	XAxisLabelPosition  XAxisLabelPosition
	YAxisLabelPosition  YAxisLabelPosition
	XAxisLabelPadding   float64
	YAxisLabelPadding   float64
	YAxisNumberOfLabels int

	// Fixed sizes of the label and title bands.
	XAxisLabelHeight float64
	YAxisLabelWidth  float64
	TitleSize        float64

	InfoBoxPlacement InfoBoxPlacement
	InfoBoxHeight    float64
	InfoBoxWidth     float64

	DisableAnimation bool
}

func DefaultChartStyle() ChartStyle {
	return ChartStyle{
		XAxisGrid:           GridStyle{NumberOfLines: 10, LineWidth: 1},
		YAxisGrid:           GridStyle{NumberOfLines: 10, LineWidth: 1},
		PointStyle:          PointStyle{PointSize: 9, LineWidth: 2},
		XAxisLabelPadding:   2,
		YAxisLabelPadding:   4,
		YAxisNumberOfLabels: 7,
		XAxisLabelHeight:    16,
		YAxisLabelWidth:     40,
		TitleSize:           20,
		InfoBoxHeight:       70,
		InfoBoxWidth:        70,
	}
}

// Decodes a JSON style on top of the defaults, so a document only needs to
// name what it changes.
func ParseChartStyle(data []byte) (ChartStyle, error) {
	style := DefaultChartStyle()
	if err := json.Unmarshal(data, &style); err != nil {
		return ChartStyle{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}

	if err := style.Validate(); err != nil {
		return ChartStyle{}, err
	}

	return style, nil
}

func (s ChartStyle) Validate() error {
	if s.YMin != nil && s.YMax != nil && *s.YMin > *s.YMax {
		return fmt.Errorf("%w: YMin (%v) is greater than YMax (%v)", ErrInvalidStyle, *s.YMin, *s.YMax)
	}

	if s.XAxisGrid.NumberOfLines < 0 || s.YAxisGrid.NumberOfLines < 0 {
		return fmt.Errorf("%w: negative number of grid lines", ErrInvalidStyle)
	}

	if s.YAxisNumberOfLabels < 0 {
		return fmt.Errorf("%w: negative number of y axis labels", ErrInvalidStyle)
	}

	sizes := map[string]float64{
		"XAxisLabelPadding": s.XAxisLabelPadding,
		"YAxisLabelPadding": s.YAxisLabelPadding,
		"XAxisLabelHeight":  s.XAxisLabelHeight,
		"YAxisLabelWidth":   s.YAxisLabelWidth,
		"TitleSize":         s.TitleSize,
		"InfoBoxHeight":     s.InfoBoxHeight,
		"InfoBoxWidth":      s.InfoBoxWidth,
		"PointSize":         s.PointStyle.PointSize,
	}
	for name, size := range sizes {
		if size < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidStyle, name, size)
		}
	}

	return nil
}

// Applies the YMin/YMax overrides to a series.
func (s ChartStyle) Apply(series ValueSeries) ValueSeries {
	return series.WithRange(s.YMin, s.YMax)
}

func marshalEnum(names []string, v int) ([]byte, error) {
	if v < 0 || v >= len(names) {
		return nil, fmt.Errorf("unknown enum value %d", v)
	}
	return json.Marshal(names[v])
}

func unmarshalEnum(names []string, data []byte) (int, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return 0, err
	}

	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q, expected one of %v", name, names)
}

var (
	xAxisLabelPositionNames = []string{"bottom", "top"}
	yAxisLabelPositionNames = []string{"leading", "trailing"}
	infoBoxKindNames        = []string{"floating", "infobox", "header"}
)

func (p XAxisLabelPosition) MarshalJSON() ([]byte, error) {
	return marshalEnum(xAxisLabelPositionNames, int(p))
}

func (p *XAxisLabelPosition) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(xAxisLabelPositionNames, data)
	*p = XAxisLabelPosition(v)
	return err
}

func (p YAxisLabelPosition) MarshalJSON() ([]byte, error) {
	return marshalEnum(yAxisLabelPositionNames, int(p))
}

func (p *YAxisLabelPosition) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(yAxisLabelPositionNames, data)
	*p = YAxisLabelPosition(v)
	return err
}

func (k InfoBoxKind) MarshalJSON() ([]byte, error) {
	return marshalEnum(infoBoxKindNames, int(k))
}

func (k *InfoBoxKind) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(infoBoxKindNames, data)
	*k = InfoBoxKind(v)
	return err
}

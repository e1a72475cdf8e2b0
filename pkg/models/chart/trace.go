package chart

import "encoding/json"

const (
	TraceTypeHeatmap = "heatmap"
	TraceTypeScatter = "scatter"
)

// Trace is one plot series. Scatter traces use X/Y with Mode and Line;
// heatmap traces additionally carry Z and a colorscale. Coordinates are
// pointers so a nil entry serializes as null, which renderers treat as
// a line break (scatter) or an empty cell (heatmap).
type Trace struct {
	Type          string      `json:"type"`
	Mode          string      `json:"mode,omitempty"`
	X             []*float64  `json:"x"`
	Y             []*float64  `json:"y"`
	Z             []*float64  `json:"z,omitempty"`
	Text          []string    `json:"text,omitempty"`
	XGap          float64     `json:"xgap,omitempty"`
	YGap          float64     `json:"ygap,omitempty"`
	Line          *Line       `json:"line,omitempty"`
	HoverInfo     string      `json:"hoverinfo,omitempty"`
	HoverTemplate string      `json:"hovertemplate,omitempty"`
	HoverLabel    *HoverLabel `json:"hoverlabel,omitempty"`
	ColorScale    []ColorStop `json:"colorscale,omitempty"`
	ShowScale     bool        `json:"showscale"`
	ZMin          *float64    `json:"zmin,omitempty"`
	ZMax          *float64    `json:"zmax,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type HoverLabel struct {
	NameLength int `json:"namelength"`
}

// ColorStop is one stop of a colorscale. It serializes as the
// [position, color] pair the plotly schema expects.
type ColorStop struct {
	Pos   float64
	Color string
}

func (s ColorStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Pos, s.Color})
}

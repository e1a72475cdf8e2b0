package adapters

import (
	"github.com/de-tools/event-calplot/pkg/models/chart"
	"github.com/de-tools/event-calplot/pkg/models/domain"
)

const (
	cellGap          = 3
	defaultHoverTmpl = "%{text}<br>Count: %{z}"
	// epsilonStop keeps exact zeros white while any positive value
	// lands on the min..max ramp.
	epsilonStop = 0.0001
)

// MapSeparatorsToTraces renders the grid's month outlines as three
// scatter line traces (verticals, horizontal steps, connectors), each a
// null-separated sequence of two-point segments.
func MapSeparatorsToTraces(g domain.Grid, lineColor string, lineWidth float64) []chart.Trace {
	groups := [][]domain.LineSegment{g.Verticals, g.Horizontals, g.Connectors}
	traces := make([]chart.Trace, 0, len(groups))
	for _, segments := range groups {
		var xs, ys []*float64
		for _, s := range segments {
			xs = append(xs, ptr(s.X1), ptr(s.X2), nil)
			ys = append(ys, ptr(s.Y1), ptr(s.Y2), nil)
		}
		traces = append(traces, chart.Trace{
			Type:      chart.TraceTypeScatter,
			Mode:      "lines",
			X:         xs,
			Y:         ys,
			Line:      &chart.Line{Color: lineColor, Width: lineWidth},
			HoverInfo: "skip",
		})
	}
	return traces
}

// MapGridToValueTrace renders the cell values as a heatmap trace with a
// three-stop colorscale: exact zero stays white, anything above zero is
// interpolated between minColor and maxColor by the renderer.
func MapGridToValueTrace(g domain.Grid, minColor, maxColor, hoverTemplate string) chart.Trace {
	if hoverTemplate == "" {
		hoverTemplate = defaultHoverTmpl
	}

	xs := make([]*float64, 0, len(g.Cells))
	ys := make([]*float64, 0, len(g.Cells))
	zs := make([]*float64, 0, len(g.Cells))
	text := make([]string, 0, len(g.Cells))
	for _, cell := range g.Cells {
		xs = append(xs, ptr(float64(cell.Week)))
		ys = append(ys, ptr(float64(cell.Weekday)))
		zs = append(zs, cell.Value)
		text = append(text, cell.Date.Format("2006-01-02"))
	}

	return chart.Trace{
		Type:          chart.TraceTypeHeatmap,
		X:             xs,
		Y:             ys,
		Z:             zs,
		Text:          text,
		XGap:          cellGap,
		YGap:          cellGap,
		HoverTemplate: hoverTemplate,
		HoverLabel:    &chart.HoverLabel{NameLength: 0},
		ColorScale: []chart.ColorStop{
			{Pos: 0, Color: "#ffffff"},
			{Pos: epsilonStop, Color: minColor},
			{Pos: 1, Color: maxColor},
		},
	}
}

// MapGridToEventTrace renders the event flags as a transparent overlay
// heatmap: flagged cells are painted in eventColor, everything else
// stays see-through.
func MapGridToEventTrace(g domain.Grid, eventColor string) chart.Trace {
	xs := make([]*float64, 0, len(g.Cells))
	ys := make([]*float64, 0, len(g.Cells))
	zs := make([]*float64, 0, len(g.Cells))
	for _, cell := range g.Cells {
		xs = append(xs, ptr(float64(cell.Week)))
		ys = append(ys, ptr(float64(cell.Weekday)))
		if cell.IsEvent {
			zs = append(zs, ptr(1))
		} else {
			zs = append(zs, ptr(0))
		}
	}

	return chart.Trace{
		Type:      chart.TraceTypeHeatmap,
		X:         xs,
		Y:         ys,
		Z:         zs,
		XGap:      cellGap,
		YGap:      cellGap,
		HoverInfo: "skip",
		ZMin:      ptr(0),
		ZMax:      ptr(1),
		ColorScale: []chart.ColorStop{
			{Pos: 0, Color: "rgba(0,0,0,0)"},
			{Pos: 1, Color: eventColor},
		},
	}
}

func ptr(v float64) *float64 {
	return &v
}

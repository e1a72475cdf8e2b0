package adapters

import (
	"strconv"

	"github.com/de-tools/event-calplot/pkg/models/chart"
	"github.com/de-tools/event-calplot/pkg/models/domain"
)

var tickFont = &chart.Font{Size: 12, Color: "#9e9e9e"}

// MapGridToLayout builds the figure layout: month labels along the top
// at the grid's computed positions, weekday labels down the reversed y
// axis, the year as a centered title.
func MapGridToLayout(g domain.Grid, months, weekdays []string, height int) chart.Layout {
	weekdayVals := make([]float64, len(weekdays))
	for i := range weekdays {
		weekdayVals[i] = float64(i)
	}

	return chart.Layout{
		Height: height,
		Title: &chart.Title{
			Text:    strconv.Itoa(g.Year),
			X:       0.5,
			XAnchor: "center",
		},
		XAxis: chart.Axis{
			TickMode: "array",
			TickText: months,
			TickVals: g.MonthLabelPositions,
			TickFont: tickFont,
		},
		YAxis: chart.Axis{
			TickMode:  "array",
			TickText:  weekdays,
			TickVals:  weekdayVals,
			TickFont:  tickFont,
			AutoRange: "reversed",
		},
		PlotBGColor: "white",
		Margin:      &chart.Margin{T: 40},
	}
}

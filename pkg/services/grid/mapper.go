// Package grid maps calendar dates onto the (week, weekday) cells of a
// one-year activity grid and derives the month geometry the chart
// draws around them.
package grid

import (
	"fmt"
	"time"

	"github.com/de-tools/event-calplot/pkg/models/domain"
)

// lineOffset shifts outlines from cell centers onto cell borders.
const lineOffset = 0.5

// Build lays out one calendar year as a grid, one cell per day in
// ascending date order. The week index counts whole weeks since the
// first week-start on or before Jan 1, so a year never needs week
// renumbering around its boundaries. Observations dated outside the
// year are ignored.
func Build(year int, weekStart time.Weekday, observations []domain.Observation) (domain.Grid, error) {
	if year <= 0 {
		return domain.Grid{}, fmt.Errorf("%w: year %d", domain.ErrInvalidValue, year)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
	offset := (int(start.Weekday()) - int(weekStart) + 7) % 7

	byDay := make(map[time.Time]float64, len(observations))
	for _, obs := range observations {
		if obs.Date.Year() != year {
			continue
		}
		byDay[obs.Date] = obs.Value
	}

	g := domain.Grid{
		Year:      year,
		WeekStart: weekStart,
		Cells:     make([]domain.Cell, 0, days),
	}

	first := true
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		cell := domain.Cell{
			Week:    (d + offset) / 7,
			Weekday: (int(date.Weekday()) - int(weekStart) + 7) % 7,
			Date:    date,
		}
		if value, ok := byDay[date]; ok {
			v := value
			cell.Value = &v
			if first || value < g.MinValue {
				g.MinValue = value
			}
			if first || value > g.MaxValue {
				g.MaxValue = value
			}
			first = false
		}
		g.Cells = append(g.Cells, cell)

		if date.Day() == 1 {
			addMonthOutline(&g, cell)
		}
	}

	g.MonthLabelPositions = monthLabelPositions(year)
	return g, nil
}

// ApplyEvents flags the cells matching the given dates. Dates outside
// the grid's year are silently ignored; flagging is independent of
// whether the cell holds a value.
func ApplyEvents(g *domain.Grid, dates []time.Time) {
	for _, raw := range dates {
		if raw.Year() != g.Year {
			continue
		}
		date := time.Date(raw.Year(), raw.Month(), raw.Day(), 0, 0, 0, 0, time.UTC)
		g.Cells[date.YearDay()-1].IsEvent = true
	}
}

// addMonthOutline records the separator segments for a cell holding the
// first day of a month: a vertical line down the month-start column,
// and, when the month starts mid-week, a horizontal step plus a
// connector back to the top of the grid.
func addMonthOutline(g *domain.Grid, cell domain.Cell) {
	week := float64(cell.Week)
	weekday := float64(cell.Weekday)

	g.Verticals = append(g.Verticals, domain.LineSegment{
		X1: week - lineOffset, Y1: weekday - lineOffset,
		X2: week - lineOffset, Y2: 6 + lineOffset,
	})

	if cell.Weekday == 0 {
		return
	}
	g.Horizontals = append(g.Horizontals, domain.LineSegment{
		X1: week - lineOffset, Y1: weekday - lineOffset,
		X2: week + lineOffset, Y2: weekday - lineOffset,
	})
	g.Connectors = append(g.Connectors, domain.LineSegment{
		X1: week + lineOffset, Y1: weekday - lineOffset,
		X2: week + lineOffset, Y2: -lineOffset,
	})
}

// monthLabelPositions places each month label near the middle of its
// month, measured in weeks from the start of the year.
func monthLabelPositions(year int) []float64 {
	positions := make([]float64, 0, 12)
	elapsed := 0
	for month := time.January; month <= time.December; month++ {
		days := daysInMonth(year, month)
		elapsed += days
		positions = append(positions, float64(elapsed-15)/7)
	}
	return positions
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package domain

import "time"

// Cell is one day of the calendar grid, addressed by (Week, Weekday).
// Weekday is relative to the grid's week start, so 0 is always the
// leftmost row regardless of convention. Value is nil when the day has
// no observation.
type Cell struct {
	Week    int
	Weekday int
	Date    time.Time
	Value   *float64
	IsEvent bool
}

// LineSegment is one straight piece of a month outline, in grid units.
// Cell centers sit on integer coordinates, so outlines run on half
// coordinates (x.5) between cells.
type LineSegment struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Grid is the calendar layout of one year: exactly one cell per
// calendar day, in ascending date order, plus the month geometry the
// chart needs (outline segments and label positions).
type Grid struct {
	Year      int
	WeekStart time.Weekday
	Cells     []Cell

	// MinValue/MaxValue are the observed extremes over non-nil cells.
	MinValue float64
	MaxValue float64

	// Month outlines, grouped the way they are drawn: the vertical
	// separator at each month start, the horizontal step when a month
	// starts mid-week, and the connector closing the step to the top.
	Verticals   []LineSegment
	Horizontals []LineSegment
	Connectors  []LineSegment

	// MonthLabelPositions are x-axis tick positions (in weeks) for the
	// twelve month labels.
	MonthLabelPositions []float64
}

// Labels holds the axis label strings for one locale. Weekdays are
// listed Monday-first; the assembler rotates them to match the grid's
// week start.
type Labels struct {
	Months   []string
	Weekdays []string
}

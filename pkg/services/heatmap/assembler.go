// Package heatmap assembles calendar heatmap figures: it composes the
// dataset preprocessing, the grid mapper and the chart adapters into
// the two public entry points of the library.
package heatmap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/event-calplot/pkg/adapters"
	"github.com/de-tools/event-calplot/pkg/models/chart"
	"github.com/de-tools/event-calplot/pkg/models/domain"
	"github.com/de-tools/event-calplot/pkg/models/store"
	"github.com/de-tools/event-calplot/pkg/services/dataset"
	"github.com/de-tools/event-calplot/pkg/services/grid"
	"github.com/de-tools/event-calplot/pkg/services/locale"
	"github.com/de-tools/event-calplot/pkg/services/style"
)

// CreateCalendarHeatmap builds the activity heatmap of one calendar
// year from the named date and value columns of a table. The event
// dates, if any, are painted as an overlay on top of the value
// coloring; event dates outside the year are ignored. The call either
// fully succeeds or returns an error, never a partial figure.
func CreateCalendarHeatmap(
	ctx context.Context,
	table store.Table,
	dateCol, valueCol string,
	year int,
	opts style.Options,
	eventDates []time.Time,
) (*chart.Figure, error) {
	observations, err := prepare(table, dateCol, valueCol, opts)
	if err != nil {
		return nil, err
	}
	return assemble(ctx, observations, year, opts, eventDates)
}

// CreateMultiYearHeatmap builds one figure per distinct year present in
// the table, in ascending year order. Each figure is identical to what
// CreateCalendarHeatmap would produce for that year with the same
// styling.
func CreateMultiYearHeatmap(
	ctx context.Context,
	table store.Table,
	dateCol, valueCol string,
	opts style.Options,
	eventDates []time.Time,
) ([]*chart.Figure, error) {
	observations, err := prepare(table, dateCol, valueCol, opts)
	if err != nil {
		return nil, err
	}

	years := dataset.Years(observations)
	figures := make([]*chart.Figure, 0, len(years))
	for _, year := range years {
		figure, err := assemble(ctx, observations, year, opts, eventDates)
		if err != nil {
			return nil, err
		}
		figures = append(figures, figure)
	}
	return figures, nil
}

func prepare(table store.Table, dateCol, valueCol string, opts style.Options) ([]domain.Observation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return dataset.Preprocess(table, dateCol, valueCol)
}

func assemble(
	ctx context.Context,
	observations []domain.Observation,
	year int,
	opts style.Options,
	eventDates []time.Time,
) (*chart.Figure, error) {
	logger := zerolog.Ctx(ctx)

	years := dataset.Years(observations)
	if !containsYear(years, year) {
		return nil, fmt.Errorf("%w: year %d not found in data, available years: %v",
			domain.ErrInvalidValue, year, years)
	}

	weekStart, err := opts.WeekStartDay()
	if err != nil {
		return nil, err
	}
	labels, err := locale.Get(opts.Language)
	if err != nil {
		return nil, err
	}

	g, err := grid.Build(year, weekStart, dataset.FilterYear(observations, year))
	if err != nil {
		return nil, err
	}
	if len(eventDates) > 0 {
		grid.ApplyEvents(&g, eventDates)
	}

	logger.Debug().
		Int("year", year).
		Int("cells", len(g.Cells)).
		Int("events", len(eventDates)).
		Msg("assembling calendar heatmap")

	traces := adapters.MapSeparatorsToTraces(g, opts.LineColor, opts.LineWidth)
	traces = append(traces, adapters.MapGridToValueTrace(g, opts.MinColor, opts.MaxColor, opts.HoverTemplate))
	if len(eventDates) > 0 {
		traces = append(traces, adapters.MapGridToEventTrace(g, opts.EventColor))
	}

	layout := adapters.MapGridToLayout(g, labels.Months, locale.WeekdayOrder(labels, weekStart), opts.Height)
	return &chart.Figure{Data: traces, Layout: layout}, nil
}

func containsYear(years []int, year int) bool {
	for _, y := range years {
		if y == year {
			return true
		}
	}
	return false
}

// Package dataset turns a raw table into a clean, dense series of daily
// observations: dates parsed and normalized, missing days filled with
// zero, duplicates resolved.
package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/de-tools/event-calplot/pkg/models/domain"
	"github.com/de-tools/event-calplot/pkg/models/store"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Preprocess extracts (date, value) observations from the named columns
// of a table. Dates are normalized to midnight UTC; when several rows
// share a day the last row wins. Every day between the first and last
// year present in the data is then filled in with a zero value, so the
// result is a dense, ascending daily series.
func Preprocess(table store.Table, dateCol, valueCol string) ([]domain.Observation, error) {
	dates, ok := table.Column(dateCol)
	if !ok {
		return nil, fmt.Errorf("%w: %q, table has columns: %v", domain.ErrColumnNotFound, dateCol, table.ColumnNames())
	}
	values, ok := table.Column(valueCol)
	if !ok {
		return nil, fmt.Errorf("%w: %q, table has columns: %v", domain.ErrColumnNotFound, valueCol, table.ColumnNames())
	}
	if len(dates) != len(values) {
		return nil, fmt.Errorf("%w: column %q has %d rows, column %q has %d",
			domain.ErrInvalidValue, dateCol, len(dates), valueCol, len(values))
	}

	byDay := make(map[time.Time]float64, len(dates))
	for i, raw := range dates {
		date, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: unparseable date %q", domain.ErrInvalidValue, dateCol, i, raw)
		}
		value, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: unparseable value %q", domain.ErrInvalidValue, valueCol, i, values[i])
		}
		byDay[date] = value
	}
	if len(byDay) == 0 {
		return nil, fmt.Errorf("%w: column %q holds no rows", domain.ErrInvalidValue, dateCol)
	}

	fillMissingDays(byDay)

	result := make([]domain.Observation, 0, len(byDay))
	for date, value := range byDay {
		result = append(result, domain.Observation{Date: date, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

// Years returns the distinct calendar years present, ascending.
func Years(observations []domain.Observation) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, obs := range observations {
		year := obs.Date.Year()
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// FilterYear selects the observations of a single calendar year,
// preserving order.
func FilterYear(observations []domain.Observation, year int) []domain.Observation {
	var result []domain.Observation
	for _, obs := range observations {
		if obs.Date.Year() == year {
			result = append(result, obs)
		}
	}
	return result
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matches %q", raw)
}

// fillMissingDays completes every year that appears in the data with
// zero-valued days. Years absent from the data stay absent, so a gap
// year in the input does not fabricate an empty chart.
func fillMissingDays(byDay map[time.Time]float64) {
	years := make(map[int]struct{})
	for date := range byDay {
		years[date.Year()] = struct{}{}
	}

	for year := range years {
		day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		for !day.After(end) {
			if _, ok := byDay[day]; !ok {
				byDay[day] = 0
			}
			day = day.AddDate(0, 0, 1)
		}
	}
}

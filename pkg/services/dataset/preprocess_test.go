package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/event-calplot/pkg/models/domain"
	"github.com/de-tools/event-calplot/pkg/models/store"
)

func tableOf(dates, values []string) store.Table {
	return store.Table{Columns: map[string][]string{"date": dates, "value": values}}
}

func TestPreprocess_MissingColumn(t *testing.T) {
	table := tableOf([]string{"2024-01-01"}, []string{"1"})

	_, err := Preprocess(table, "day", "value")
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
	assert.Contains(t, err.Error(), `"day"`)

	_, err = Preprocess(table, "date", "count")
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestPreprocess_UnparseableCells(t *testing.T) {
	_, err := Preprocess(tableOf([]string{"yesterday"}, []string{"1"}), "date", "value")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Contains(t, err.Error(), `"yesterday"`)

	_, err = Preprocess(tableOf([]string{"2024-01-01"}, []string{"many"}), "date", "value")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestPreprocess_MismatchedColumnLengths(t *testing.T) {
	_, err := Preprocess(tableOf([]string{"2024-01-01", "2024-01-02"}, []string{"1"}), "date", "value")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestPreprocess_EmptyTable(t *testing.T) {
	_, err := Preprocess(tableOf(nil, nil), "date", "value")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestPreprocess_DateLayoutsAndNormalization(t *testing.T) {
	observations, err := Preprocess(tableOf(
		[]string{"2024-03-05", "2024-03-06 14:30:00", "2024-03-07T09:00:00Z"},
		[]string{"1", "2", "3"},
	), "date", "value")
	require.NoError(t, err)

	byDay := make(map[time.Time]float64)
	for _, obs := range observations {
		byDay[obs.Date] = obs.Value
	}
	assert.Equal(t, 2.0, byDay[time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)])
	assert.Equal(t, 3.0, byDay[time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)])
}

func TestPreprocess_LastRowWinsOnDuplicateDates(t *testing.T) {
	observations, err := Preprocess(tableOf(
		[]string{"2024-03-05", "2024-03-05 23:00:00"},
		[]string{"1", "9"},
	), "date", "value")
	require.NoError(t, err)

	for _, obs := range observations {
		if obs.Date.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
			assert.Equal(t, 9.0, obs.Value)
			return
		}
	}
	t.Fatal("duplicated day missing from result")
}

func TestPreprocess_FillsMissingDaysWithZero(t *testing.T) {
	observations, err := Preprocess(tableOf([]string{"2024-03-05"}, []string{"7"}), "date", "value")
	require.NoError(t, err)

	// 2024 is a leap year: one observation per day, ascending.
	require.Len(t, observations, 366)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), observations[0].Date)
	assert.Equal(t, 0.0, observations[0].Value)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), observations[365].Date)
	for i := 1; i < len(observations); i++ {
		assert.True(t, observations[i].Date.After(observations[i-1].Date))
	}
	assert.Equal(t, 7.0, observations[64].Value) // March 5th
}

func TestPreprocess_DoesNotFabricateGapYears(t *testing.T) {
	observations, err := Preprocess(tableOf(
		[]string{"2022-06-01", "2024-06-01"},
		[]string{"1", "2"},
	), "date", "value")
	require.NoError(t, err)

	assert.Equal(t, []int{2022, 2024}, Years(observations))
	// 2022 (365) + 2024 (366), no 2023 in between.
	assert.Len(t, observations, 731)
}

func TestYears_DistinctAscending(t *testing.T) {
	observations := []domain.Observation{
		{Date: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
	assert.Equal(t, []int{2023, 2025}, Years(observations))
}

func TestFilterYear(t *testing.T) {
	observations, err := Preprocess(tableOf(
		[]string{"2023-12-31", "2024-01-01"},
		[]string{"1", "2"},
	), "date", "value")
	require.NoError(t, err)

	filtered := FilterYear(observations, 2024)
	assert.Len(t, filtered, 366)
	for _, obs := range filtered {
		assert.Equal(t, 2024, obs.Date.Year())
	}
}

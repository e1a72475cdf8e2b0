package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/event-calplot/pkg/models/domain"
)

func TestGet_SupportedLanguages(t *testing.T) {
	en, err := Get("en")
	require.NoError(t, err)
	assert.Len(t, en.Months, 12)
	assert.Len(t, en.Weekdays, 7)
	assert.Equal(t, "Jan", en.Months[0])
	assert.Equal(t, "Mon", en.Weekdays[0])

	ko, err := Get("ko")
	require.NoError(t, err)
	assert.Equal(t, "1월", ko.Months[0])
	assert.Equal(t, "월", ko.Weekdays[0])
}

func TestGet_UnsupportedLanguage(t *testing.T) {
	_, err := Get("fr")
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), "en, ko")
}

func TestWeekdayOrder(t *testing.T) {
	labels, err := Get("en")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		WeekdayOrder(labels, time.Monday))
	assert.Equal(t,
		[]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		WeekdayOrder(labels, time.Sunday))
}

// Package locale provides the static axis label lookup for supported
// languages.
package locale

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/de-tools/event-calplot/pkg/models/domain"
)

var locales = map[string]domain.Labels{
	"en": {
		Months: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	},
	"ko": {
		Months: []string{
			"1월", "2월", "3월", "4월", "5월", "6월",
			"7월", "8월", "9월", "10월", "11월", "12월",
		},
		Weekdays: []string{"월", "화", "수", "목", "금", "토", "일"},
	},
}

// Supported returns the supported language codes in stable order.
func Supported() []string {
	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Get returns the labels for a language code. Weekday labels are
// Monday-first; use WeekdayOrder to rotate them for a different week
// start.
func Get(language string) (domain.Labels, error) {
	labels, ok := locales[language]
	if !ok {
		return domain.Labels{}, fmt.Errorf("%w: unsupported language %q, supported languages: %s",
			domain.ErrConfig, language, strings.Join(Supported(), ", "))
	}
	return labels, nil
}

// WeekdayOrder returns the weekday labels rotated so the first entry is
// the given week start.
func WeekdayOrder(labels domain.Labels, weekStart time.Weekday) []string {
	shift := (int(weekStart) - int(time.Monday) + 7) % 7
	ordered := make([]string, 0, len(labels.Weekdays))
	for i := range labels.Weekdays {
		ordered = append(ordered, labels.Weekdays[(i+shift)%len(labels.Weekdays)])
	}
	return ordered
}

// Package style holds the immutable styling options of a heatmap and
// the color math the chart's value scale is built from.
package style

import (
	"fmt"
	"time"

	"github.com/de-tools/event-calplot/pkg/models/domain"
	"github.com/de-tools/event-calplot/pkg/services/locale"
)

// Options configures the look of a single heatmap. The zero value is
// not usable; start from Default and override fields as needed.
type Options struct {
	MinColor      string  `mapstructure:"min_color"`
	MaxColor      string  `mapstructure:"max_color"`
	LineColor     string  `mapstructure:"line_color"`
	LineWidth     float64 `mapstructure:"line_width"`
	Height        int     `mapstructure:"height"`
	Language      string  `mapstructure:"language"`
	WeekStart     string  `mapstructure:"week_start"`
	HoverTemplate string  `mapstructure:"hover_template"`
	EventColor    string  `mapstructure:"event_color"`
}

func Default() Options {
	return Options{
		MinColor:   "#eeeeee",
		MaxColor:   "#678fae",
		LineColor:  "#9e9e9e",
		LineWidth:  1.5,
		Height:     250,
		Language:   "en",
		WeekStart:  "monday",
		EventColor: "#76cf61",
	}
}

var weekStarts = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WeekStartDay resolves the WeekStart name to a weekday.
func (o Options) WeekStartDay() (time.Weekday, error) {
	day, ok := weekStarts[o.WeekStart]
	if !ok {
		return 0, fmt.Errorf("%w: unknown week start %q", domain.ErrConfig, o.WeekStart)
	}
	return day, nil
}

func (o Options) Validate() error {
	for _, c := range []struct {
		field string
		value string
	}{
		{"min_color", o.MinColor},
		{"max_color", o.MaxColor},
		{"line_color", o.LineColor},
		{"event_color", o.EventColor},
	} {
		if _, err := ParseHex(c.value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrConfig, c.field, err)
		}
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("%w: line_width must be positive, got %v", domain.ErrConfig, o.LineWidth)
	}
	if o.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", domain.ErrConfig, o.Height)
	}
	if _, err := o.WeekStartDay(); err != nil {
		return err
	}
	if _, err := locale.Get(o.Language); err != nil {
		return err
	}
	return nil
}

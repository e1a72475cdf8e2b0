package style

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a style profile from a config file, layered over the
// defaults, and validates the result. The file format is whatever
// viper infers from the extension (yaml, toml, json, ...).
func Load(profilePath string) (Options, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	defaults := Default()
	v.SetDefault("min_color", defaults.MinColor)
	v.SetDefault("max_color", defaults.MaxColor)
	v.SetDefault("line_color", defaults.LineColor)
	v.SetDefault("line_width", defaults.LineWidth)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("week_start", defaults.WeekStart)
	v.SetDefault("event_color", defaults.EventColor)

	if err := v.ReadInConfig(); err != nil {
		return Options{}, fmt.Errorf("failed to read style profile: %w", err)
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse style profile: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

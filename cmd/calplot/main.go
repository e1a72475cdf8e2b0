package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/event-calplot/pkg/models/store"
	"github.com/de-tools/event-calplot/pkg/services/dataset"
	"github.com/de-tools/event-calplot/pkg/services/grid"
	"github.com/de-tools/event-calplot/pkg/services/heatmap"
	"github.com/de-tools/event-calplot/pkg/services/style"
	"github.com/de-tools/event-calplot/pkg/terminal/export"
)

var (
	year      int
	language  string
	stylePath string
	outPath   string
	preview   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calplot",
		Short: "Generate an example calendar heatmap figure",
		RunE:  run,
	}

	rootCmd.Flags().IntVar(&year, "year", 2024, "Year to visualize")
	rootCmd.Flags().StringVar(&language, "lang", "en", "Language for axis labels (en, ko)")
	rootCmd.Flags().StringVar(&stylePath, "style", "", "Path to a style profile (yaml/toml/json)")
	rootCmd.Flags().StringVar(&outPath, "out", "example.json", "Output path for the figure JSON")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "Print an ASCII preview of the grid")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	opts := style.Default()
	if stylePath != "" {
		loaded, err := style.Load(stylePath)
		if err != nil {
			return err
		}
		opts = loaded
	}
	opts.Language = language

	table := sampleTable(year)
	eventDates := sampleEvents(year)

	figure, err := heatmap.CreateCalendarHeatmap(ctx, table, "date", "value", year, opts, eventDates)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(figure, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode figure: %w", err)
	}
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}
	logger.Info().Str("path", outPath).Int("year", year).Msg("figure written")

	if preview {
		return printPreview(table, year, opts, eventDates)
	}
	return nil
}

// sampleTable generates one row per day of the year with a random
// value, the same shape as the library's quick-start data.
func sampleTable(year int) store.Table {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()

	dates := make([]string, 0, days)
	values := make([]string, 0, days)
	for d := 0; d < days; d++ {
		dates = append(dates, start.AddDate(0, 0, d).Format("2006-01-02"))
		values = append(values, strconv.Itoa(rand.Intn(100)))
	}
	return store.Table{Columns: map[string][]string{"date": dates, "value": values}}
}

func sampleEvents(year int) []time.Time {
	days := []struct {
		month time.Month
		day   int
	}{
		{time.January, 1},
		{time.February, 14},
		{time.March, 1},
		{time.October, 3},
		{time.October, 9},
		{time.December, 25},
	}
	events := make([]time.Time, 0, len(days))
	for _, d := range days {
		events = append(events, time.Date(year, d.month, d.day, 0, 0, 0, 0, time.UTC))
	}
	return events
}

func printPreview(table store.Table, year int, opts style.Options, eventDates []time.Time) error {
	observations, err := dataset.Preprocess(table, "date", "value")
	if err != nil {
		return err
	}
	weekStart, err := opts.WeekStartDay()
	if err != nil {
		return err
	}
	g, err := grid.Build(year, weekStart, dataset.FilterYear(observations, year))
	if err != nil {
		return err
	}
	grid.ApplyEvents(&g, eventDates)

	return export.NewReporter(os.Stdout).Handle(g)
}

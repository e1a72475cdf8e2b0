package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/event-calplot/pkg/models/domain"
)

// shades orders the value shading runes from lightest to darkest.
var shades = []rune{'.', '░', '▒', '▓', '█'}

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle writes an ASCII preview of the grid: one line per weekday, one
// column per week. Days without an observation print as spaces, values
// as shading runes scaled between the grid's min and max, event days as
// a diamond marker.
func (r *Reporter) Handle(g domain.Grid) error {
	weeks := 0
	for _, cell := range g.Cells {
		if cell.Week+1 > weeks {
			weeks = cell.Week + 1
		}
	}

	rows := make([][]rune, 7)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", weeks))
	}
	for _, cell := range g.Cells {
		rows[cell.Weekday][cell.Week] = r.cellRune(g, cell)
	}

	funcMap := template.FuncMap{
		"row": func(runes []rune) string { return string(runes) },
	}

	tmpl := `{{.Year}}
{{range .Rows}}{{row .}}
{{end}}`

	t, err := template.New("preview").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, struct {
		Year int
		Rows [][]rune
	}{Year: g.Year, Rows: rows})
}

func (r *Reporter) cellRune(g domain.Grid, cell domain.Cell) rune {
	if cell.IsEvent {
		return '◆'
	}
	if cell.Value == nil {
		return ' '
	}
	span := g.MaxValue - g.MinValue
	if span == 0 {
		return shades[0]
	}
	idx := int((*cell.Value - g.MinValue) / span * float64(len(shades)-1))
	if idx > len(shades)-1 {
		idx = len(shades) - 1
	}
	return shades[idx]
}

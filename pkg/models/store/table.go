package store

import "sort"

// Table is an in-memory table with named columns of raw, unparsed cells.
// It is the only input surface of the library: callers hand over a table
// plus the names of the date and value columns.
type Table struct {
	Columns map[string][]string
}

func (t Table) Column(name string) ([]string, bool) {
	cells, ok := t.Columns[name]
	return cells, ok
}

func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for name := range t.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

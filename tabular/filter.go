package tabular

import (
	"strings"

	"github.com/doitintl/hello/agent-data-api/slice"
)

// Query selects rows whose Column value matches Value.
type Query struct {
	Column string
	Value  string
	// Exact compares the whole text case-sensitively instead of a
	// case-insensitive substring match.
	Exact bool
	// StrictColumn requires Column to name a column exactly.
	StrictColumn bool
}

// ResolveColumn maps name to the table's column. Unless strict, the lookup ignores
// case and surrounding whitespace.
func (t *Table) ResolveColumn(name string, strict bool) (string, error) {
	if i := slice.FindIndex(t.Columns, name); i > -1 {
		return t.Columns[i], nil
	}

	if !strict {
		if i := slice.FindIndexFold(t.Columns, strings.TrimSpace(name)); i > -1 {
			return t.Columns[i], nil
		}
	}

	return "", InvalidColumn(name, t.Columns)
}

// Filter returns the rows of t matching q in their original order. Cells holding
// nil never match.
func Filter(t *Table, q Query) (*Table, error) {
	column, err := t.ResolveColumn(q.Column, q.StrictColumn)
	if err != nil {
		return nil, err
	}

	return t.Where(func(r Record) bool {
		return Match(r[column], q.Value, q.Exact)
	}), nil
}

// Match reports whether the text rendering of v matches value.
func Match(v any, value string, exact bool) bool {
	if v == nil {
		return false
	}

	s := FormatValue(v)

	if exact {
		return s == value
	}

	return strings.Contains(strings.ToLower(s), strings.ToLower(value))
}

// Find returns the first row whose column equals value exactly, or nil.
func (t *Table) Find(column, value string) Record {
	for _, r := range t.Rows {
		if Match(r[column], value, true) {
			return r
		}
	}

	return nil
}

package tabular

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Record is one row of a table keyed by column name.
type Record map[string]any

// Table is an in-memory dataset with uniquely named, ordered columns.
type Table struct {
	Columns []string
	Rows    []Record
}

func NewTable(columns []string, rows ...Record) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Rows:    rows,
	}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return t.Len() == 0
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the table structure. Cell values are immutable
// scalars and are shared.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	rows := make([]Record, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}

	return NewTable(t.Columns, rows...)
}

// Append returns a new table holding every row of t followed by rec. Fields of rec
// that are not columns of t become new trailing columns; earlier rows hold nil for
// them.
func (t *Table) Append(columns []string, rec Record) *Table {
	out := t.Clone()
	if out == nil {
		out = NewTable(nil)
	}

	for _, c := range columns {
		if !out.HasColumn(c) {
			out.Columns = append(out.Columns, c)
		}
	}

	row := make(Record, len(out.Columns))
	for _, c := range out.Columns {
		row[c] = Normalize(rec[c])
	}

	out.Rows = append(out.Rows, row)

	return out
}

// Where returns the rows for which keep reports true, in table order.
func (t *Table) Where(keep func(Record) bool) *Table {
	out := NewTable(t.Columns)
	out.Rows = make([]Record, 0)

	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}

	return out
}

// First returns the first row, or nil on an empty table.
func (t *Table) First() Record {
	if t.Empty() {
		return nil
	}

	return t.Rows[0]
}

// Records returns the rows bound to the column order for JSON serialization.
func (t *Table) Records() []OrderedRecord {
	out := make([]OrderedRecord, 0, t.Len())
	if t == nil {
		return out
	}

	for _, r := range t.Rows {
		out = append(out, OrderedRecord{Columns: t.Columns, Record: r})
	}

	return out
}

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// String returns the value of column as text the way it is compared by filters.
func (r Record) String(column string) string {
	return FormatValue(r[column])
}

// Float returns the numeric value of column, or zero when it is not numeric.
func (r Record) Float(column string) float64 {
	f, _ := AsFloat(r[column])
	return f
}

// OrderedRecord serializes a record with its keys in column order.
type OrderedRecord struct {
	Columns []string
	Record  Record
}

func (o OrderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, c := range o.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(o.Record[c])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// WriteResult describes a persisted change.
type WriteResult struct {
	// Revision identifies the stored version, such as a commit sha.
	Revision string
	Message  string
}

package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names a text encoding tried when decoding CSV content.
type Encoding string

const (
	UTF8    Encoding = "utf-8"
	UTF8Sig Encoding = "utf-8-sig"
	Latin1  Encoding = "latin1"
	CP1252  Encoding = "cp1252"
)

const bom = "\ufeff"

// DefaultEncodings is the decoding order used when none is configured.
var DefaultEncodings = []Encoding{UTF8, UTF8Sig, Latin1, CP1252}

var errInvalidUTF8 = errors.New("invalid utf-8 content")

// CSVOptions controls how CSV content is decoded.
type CSVOptions struct {
	// Encodings are tried in order; the first that decodes and parses wins.
	Encodings []Encoding
	// SkipBadLines drops malformed rows instead of failing the parse.
	SkipBadLines bool
}

// ParseCSV decodes data into a table whose first row holds the column names.
// Column names are trimmed and stripped of a byte order mark. Short rows are
// padded with nil.
func ParseCSV(data []byte, opts CSVOptions) (*Table, error) {
	encodings := opts.Encodings
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	var errs []string

	for _, enc := range encodings {
		text, err := decode(data, enc)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", enc, err))
			continue
		}

		t, err := parseText(text, opts.SkipBadLines)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", enc, err))
			continue
		}

		return t, nil
	}

	return nil, RemoteAccess(nil, "could not parse CSV content (%s)", strings.Join(errs, "; "))
}

func decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case UTF8:
		if !utf8.Valid(data) {
			return "", errInvalidUTF8
		}

		return string(data), nil
	case UTF8Sig:
		data = bytes.TrimPrefix(data, []byte(bom))
		if !utf8.Valid(data) {
			return "", errInvalidUTF8
		}

		return string(data), nil
	case Latin1:
		b, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		return string(b), err
	case CP1252:
		b, err := charmap.Windows1252.NewDecoder().Bytes(data)
		return string(b), err
	default:
		return "", fmt.Errorf("unsupported encoding %q", enc)
	}
}

func parseText(text string, skipBadLines bool) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return NewTable(nil), nil
	}

	if err != nil {
		return nil, err
	}

	columns := cleanHeader(header)
	cells := make([][]string, 0)

	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			if skipBadLines {
				continue
			}

			return nil, err
		}

		if len(fields) > len(columns) {
			if skipBadLines {
				continue
			}

			line, _ := r.FieldPos(0)

			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(columns), len(fields))
		}

		cells = append(cells, fields)
	}

	return build(columns, cells), nil
}

// build types every column from its raw cells. Missing trailing cells are empty.
func build(columns []string, cells [][]string) *Table {
	rows := make([]Record, len(cells))
	for i := range rows {
		rows[i] = make(Record, len(columns))
	}

	raw := make([]string, len(cells))

	for j, c := range columns {
		for i, fields := range cells {
			raw[i] = ""
			if j < len(fields) {
				raw[i] = fields[j]
			}
		}

		for i, v := range InferColumn(raw) {
			rows[i][c] = v
		}
	}

	return NewTable(columns, rows...)
}

// cleanHeader trims names, names blank columns by position and suffixes
// duplicates so that every column is unique.
func cleanHeader(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))

	for i, h := range header {
		name := strings.TrimSpace(strings.ReplaceAll(h, bom, ""))
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		if n, ok := seen[name]; ok {
			base := name

			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)

				if _, taken := seen[name]; !taken {
					break
				}
			}

			seen[base] = n
		}

		seen[name] = 0
		columns[i] = name
	}

	return columns
}

// EncodeCSV writes t with a header row. Nil cells are written empty.
func EncodeCSV(t *Table) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}

	fields := make([]string, len(t.Columns))

	for _, r := range t.Rows {
		for i, c := range t.Columns {
			fields[i] = FormatValue(r[c])
		}

		if err := w.Write(fields); err != nil {
			return nil, err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

package tabular

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// ParseExcel reads the first worksheet of an xlsx workbook into a table whose
// first row holds the column names. Cells are typed per column like CSV cells.
func ParseExcel(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, RemoteAccess(err, "could not open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return NewTable(nil), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, RemoteAccess(err, "could not read worksheet %s", sheets[0])
	}

	if len(rows) == 0 {
		return NewTable(nil), nil
	}

	columns := cleanHeader(rows[0])
	cells := make([][]string, 0, len(rows)-1)

	for _, r := range rows[1:] {
		if len(r) > len(columns) {
			r = r[:len(columns)]
		}

		cells = append(cells, r)
	}

	return build(columns, cells), nil
}

// EncodeExcel writes t to a single-sheet xlsx workbook.
func EncodeExcel(t *Table, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, err
		}
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range t.Rows {
		values := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			values[j] = r[c]
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

package dal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"github.com/doitintl/hello/agent-data-api/metrics"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

const (
	backendSheets = "sheets"

	sheetsMimeType = "application/vnd.google-apps.spreadsheet"

	valueInputUserEntered = "USER_ENTERED"
	insertRows            = "INSERT_ROWS"
	renderUnformatted     = "UNFORMATTED_VALUE"
)

// Sheets reads and edits the first worksheet of spreadsheets. Dataset names are
// spreadsheet titles resolved through Drive unless a fixed spreadsheet id is set.
type Sheets struct {
	sheets *sheets.Service
	drive  *drive.Service
	id     string

	mu  sync.Mutex
	ids map[string]string
}

func NewSheets(sheetsService *sheets.Service, driveService *drive.Service, spreadsheetID string) *Sheets {
	return &Sheets{
		sheets: sheetsService,
		drive:  driveService,
		id:     spreadsheetID,
		ids:    make(map[string]string),
	}
}

func (d *Sheets) spreadsheetID(ctx context.Context, name string) (string, error) {
	if d.id != "" {
		return d.id, nil
	}

	d.mu.Lock()
	id, ok := d.ids[name]
	d.mu.Unlock()

	if ok {
		return id, nil
	}

	if d.drive == nil {
		return "", tabular.Configuration("SPREADSHEET_ID")
	}

	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", strings.ReplaceAll(name, "'", "\\'"), sheetsMimeType)

	res, err := d.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", tabular.RemoteAccess(err, "could not look up spreadsheet %s", name)
	}

	if len(res.Files) == 0 {
		return "", tabular.NotFound("spreadsheet %s not found", name)
	}

	id = res.Files[0].Id

	d.mu.Lock()
	d.ids[name] = id
	d.mu.Unlock()

	return id, nil
}

// worksheet returns the spreadsheet id and the quoted title of its first sheet.
func (d *Sheets) worksheet(ctx context.Context, name string) (string, string, error) {
	id, err := d.spreadsheetID(ctx, name)
	if err != nil {
		return "", "", err
	}

	ss, err := d.sheets.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return "", "", sheetsError(err, "open", name)
	}

	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return "", "", tabular.NotFound("spreadsheet %s has no worksheets", name)
	}

	return id, "'" + strings.ReplaceAll(ss.Sheets[0].Properties.Title, "'", "''") + "'", nil
}

func (d *Sheets) values(ctx context.Context, id, rng, name string) ([][]interface{}, error) {
	vr, err := d.sheets.Spreadsheets.Values.Get(id, rng).
		ValueRenderOption(renderUnformatted).
		Context(ctx).
		Do()
	if err != nil {
		return nil, sheetsError(err, "read", name)
	}

	return vr.Values, nil
}

// Load reads every record below the header row. Blank cells read as empty
// strings and integral numbers as int64.
func (d *Sheets) Load(ctx context.Context, name string) (t *tabular.Table, err error) {
	defer func() { metrics.ObserveDataset(backendSheets, "load", err) }()

	id, title, err := d.worksheet(ctx, name)
	if err != nil {
		return nil, err
	}

	rows, err := d.values(ctx, id, title, name)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return tabular.NewTable(nil), nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	out := tabular.NewTable(header)
	out.Rows = make([]tabular.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		rec := make(tabular.Record, len(header))

		for i, c := range header {
			rec[c] = ""
			if i < len(row) {
				rec[c] = sheetValue(row[i])
			}
		}

		out.Rows = append(out.Rows, rec)
	}

	return out, nil
}

// AppendRecord adds record as a new row ordered by the header row. Fields
// without a header column are dropped.
func (d *Sheets) AppendRecord(ctx context.Context, name string, record tabular.Record) (err error) {
	defer func() { metrics.ObserveDataset(backendSheets, "append", err) }()

	id, title, err := d.worksheet(ctx, name)
	if err != nil {
		return err
	}

	header, err := d.values(ctx, id, title+"!1:1", name)
	if err != nil {
		return err
	}

	if len(header) == 0 {
		return tabular.NotFound("spreadsheet %s has no header row", name)
	}

	row := make([]interface{}, len(header[0]))
	for i, h := range header[0] {
		v := tabular.Normalize(record[strings.TrimSpace(fmt.Sprint(h))])
		if v == nil {
			v = ""
		}

		row[i] = v
	}

	_, err = d.sheets.Spreadsheets.Values.Append(id, title, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return sheetsError(err, "append to", name)
	}

	return nil
}

// UpdateCell overwrites the cell of column in the row whose first column reads
// key.
func (d *Sheets) UpdateCell(ctx context.Context, name, key, column string, value any) (err error) {
	defer func() { metrics.ObserveDataset(backendSheets, "update", err) }()

	id, title, err := d.worksheet(ctx, name)
	if err != nil {
		return err
	}

	header, err := d.values(ctx, id, title+"!1:1", name)
	if err != nil {
		return err
	}

	col := -1

	if len(header) > 0 {
		for i, h := range header[0] {
			if fmt.Sprint(h) == column {
				col = i + 1
				break
			}
		}
	}

	if col < 0 {
		return tabular.NotFound("column %s not found", column)
	}

	keys, err := d.values(ctx, id, title+"!A:A", name)
	if err != nil {
		return err
	}

	row := -1

	for i, k := range keys {
		if len(k) > 0 && tabular.FormatValue(sheetValue(k[0])) == key {
			row = i + 1
			break
		}
	}

	if row < 2 {
		return tabular.NotFound("record %s not found", key)
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	v := tabular.Normalize(value)
	if v == nil {
		v = ""
	}

	_, err = d.sheets.Spreadsheets.Values.Update(id, title+"!"+cell, &sheets.ValueRange{Values: [][]interface{}{{v}}}).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return sheetsError(err, "update", name)
	}

	return nil
}

func sheetValue(v interface{}) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}

		return x
	case nil:
		return ""
	default:
		return x
	}
}

func sheetsError(err error, op, name string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return tabular.NotFound("spreadsheet %s not found", name)
	}

	return tabular.RemoteAccess(err, "could not %s spreadsheet %s", op, name)
}

package dal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/doitintl/hello/agent-data-api/tabular"
)

const fakeSpreadsheetID = "sheet-1"

// fakeWorkbook serves a single worksheet named Hoja1 through the Sheets and
// Drive APIs.
type fakeWorkbook struct {
	mu   sync.Mutex
	grid [][]interface{}
}

func (f *fakeWorkbook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	valuesPrefix := "/v4/spreadsheets/" + fakeSpreadsheetID + "/values/"

	switch {
	case r.URL.Path == "/drive/v3/files":
		if strings.Contains(r.URL.Query().Get("q"), "name = 'Datos_Usuarios_IA'") {
			_, _ = w.Write([]byte(`{"files":[{"id":"` + fakeSpreadsheetID + `","name":"Datos_Usuarios_IA"}]}`))
			return
		}

		_, _ = w.Write([]byte(`{"files":[]}`))
	case r.URL.Path == "/v4/spreadsheets/"+fakeSpreadsheetID:
		_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"Hoja1"}}]}`))
	case strings.HasPrefix(r.URL.Path, valuesPrefix):
		f.values(w, r, strings.TrimPrefix(r.URL.Path, valuesPrefix))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"not found"}}`))
	}
}

func (f *fakeWorkbook) values(w http.ResponseWriter, r *http.Request, rng string) {
	switch {
	case r.Method == http.MethodGet && rng == "'Hoja1'":
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"values": f.grid})
	case r.Method == http.MethodGet && rng == "'Hoja1'!1:1":
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"values": f.grid[:1]})
	case r.Method == http.MethodGet && rng == "'Hoja1'!A:A":
		col := make([][]interface{}, 0, len(f.grid))
		for _, row := range f.grid {
			col = append(col, row[:1])
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"values": col})
	case r.Method == http.MethodPost && rng == "'Hoja1':append":
		var vr sheets.ValueRange
		_ = json.NewDecoder(r.Body).Decode(&vr)
		f.grid = append(f.grid, vr.Values...)

		_, _ = w.Write([]byte(`{}`))
	case r.Method == http.MethodPut && strings.HasPrefix(rng, "'Hoja1'!"):
		var vr sheets.ValueRange
		_ = json.NewDecoder(r.Body).Decode(&vr)

		cell := strings.TrimPrefix(rng, "'Hoja1'!")
		col := int(cell[0] - 'A')
		row := int(cell[1] - '1')
		f.grid[row][col] = vr.Values[0][0]

		_, _ = w.Write([]byte(`{}`))
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func newSheetsStore(t *testing.T, wb *fakeWorkbook, spreadsheetID string) *Sheets {
	srv := httptest.NewServer(wb)
	t.Cleanup(srv.Close)

	ctx := context.Background()

	sheetsService, err := sheets.NewService(ctx, option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)

	driveService, err := drive.NewService(ctx, option.WithEndpoint(srv.URL+"/drive/v3/"), option.WithoutAuthentication())
	require.NoError(t, err)

	return NewSheets(sheetsService, driveService, spreadsheetID)
}

func employees() *fakeWorkbook {
	return &fakeWorkbook{grid: [][]interface{}{
		{"num", "Name", "Job", "Address", "RequestedTimeOff"},
		{float64(1), "Ana", "Analyst", "Calle 1", float64(2)},
		{float64(2), "Luis", "Welder", "", float64(0)},
	}}
}

func TestSheetsLoad(t *testing.T) {
	store := newSheetsStore(t, employees(), "")

	table, err := store.Load(context.Background(), "Datos_Usuarios_IA")

	require.NoError(t, err)
	assert.Equal(t, []string{"num", "Name", "Job", "Address", "RequestedTimeOff"}, table.Columns)
	assert.Equal(t, tabular.Record{"num": int64(1), "Name": "Ana", "Job": "Analyst", "Address": "Calle 1", "RequestedTimeOff": int64(2)}, table.Rows[0])
	assert.Equal(t, "", table.Rows[1]["Address"])
}

func TestSheetsLoadUnknownSpreadsheet(t *testing.T) {
	_, err := newSheetsStore(t, employees(), "").Load(context.Background(), "Otro")

	assert.ErrorIs(t, err, tabular.ErrNotFound)
}

func TestSheetsAppendRecord(t *testing.T) {
	wb := employees()
	store := newSheetsStore(t, wb, fakeSpreadsheetID)
	ctx := context.Background()

	err := store.AppendRecord(ctx, "Datos_Usuarios_IA", tabular.Record{"Name": "Sam", "num": 3, "Job": "Driver", "Address": "Av 9", "RequestedTimeOff": 1})
	require.NoError(t, err)

	table, err := store.Load(ctx, "Datos_Usuarios_IA")
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, int64(3), table.Rows[2]["num"])
	assert.Equal(t, "Sam", table.Rows[2]["Name"])
}

func TestSheetsUpdateCell(t *testing.T) {
	wb := employees()
	store := newSheetsStore(t, wb, fakeSpreadsheetID)
	ctx := context.Background()

	require.NoError(t, store.UpdateCell(ctx, "Datos_Usuarios_IA", "2", "Job", "Supervisor"))
	assert.Equal(t, "Supervisor", wb.grid[2][2])

	assert.ErrorIs(t, store.UpdateCell(ctx, "Datos_Usuarios_IA", "9", "Job", "x"), tabular.ErrNotFound)
	assert.ErrorIs(t, store.UpdateCell(ctx, "Datos_Usuarios_IA", "1", "Salary", "x"), tabular.ErrNotFound)
	assert.ErrorIs(t, store.UpdateCell(ctx, "Datos_Usuarios_IA", "num", "Job", "x"), tabular.ErrNotFound)
}

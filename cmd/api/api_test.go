package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/agent-data-api/logger"
	mes "github.com/doitintl/hello/agent-data-api/mes/domain"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

func newMESHandler(t *testing.T) http.Handler {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)

	orders := tabular.NewTable(
		[]string{"Orden_ID", "Linea", "Estado"},
		tabular.Record{"Orden_ID": "OP-1", "Linea": "L1", "Estado": "En Proceso"},
	)

	data, err := tabular.EncodeExcel(orders, "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, mes.WorkbookOrders), data, 0o644))

	ctx := context.Background()

	a, err := NewAPI(ctx, nil, &logger.Logging{}, "mes")
	require.NoError(t, err)

	h, err := a.Build(ctx)
	require.NoError(t, err)

	return h
}

func TestBuildMES(t *testing.T) {
	h := newMESHandler(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/ordenes-produccion/activas", http.StatusOK},
		{http.MethodGet, "/scrap/list", http.StatusInternalServerError},
		{http.MethodPost, "/analisis-turno", http.StatusBadRequest},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBuildMESAllowsCrossOrigin(t *testing.T) {
	h := newMESHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPI(t *testing.T) {
	_, err := NewAPI(context.Background(), nil, &logger.Logging{}, "billing")
	assert.ErrorContains(t, err, "unknown service")

	t.Setenv("EMAIL_SENDER", "")
	_, err = NewAPI(context.Background(), nil, &logger.Logging{}, "reports")
	assert.ErrorIs(t, err, tabular.ErrConfiguration)

	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_REPO", "")
	a, err := NewAPI(context.Background(), nil, &logger.Logging{}, "sales")
	require.NoError(t, err)

	_, err = a.Build(context.Background())
	assert.ErrorIs(t, err, tabular.ErrConfiguration)
}

func TestServices(t *testing.T) {
	assert.Equal(t, []string{"callcenter", "employees", "manufacturing", "mes", "reports", "sales", "supplychain"}, Services())
}

package mid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/metrics"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

func newApp() *web.App {
	return web.NewTestApp("test", Logger(), Metrics(), Errors(), Sentry(), Panics())
}

func do(app *web.App, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)

	return w
}

func TestErrorsTranslatesDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "not found",
			err:    tabular.NotFound("Producto no encontrado."),
			status: http.StatusNotFound,
			body:   `{"error":"Producto no encontrado."}`,
		},
		{
			name:   "conflict",
			err:    tabular.Conflict("duplicate"),
			status: http.StatusConflict,
			body:   `{"error":"duplicate"}`,
		},
		{
			name:   "configuration",
			err:    tabular.Configuration("GITHUB_TOKEN"),
			status: http.StatusInternalServerError,
			body:   `{"error":"missing required configuration: GITHUB_TOKEN"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/x", func(ctx *gin.Context) error { return tt.err })

			w := do(app, http.MethodGet, "/x", nil)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestPanicsRecovers(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(ctx *gin.Context) error { panic("boom") })

	w := do(app, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"panic: boom"}`, w.Body.String())
}

func TestPathParams(t *testing.T) {
	app := newApp()
	app.Get("/items/:id", func(ctx *gin.Context) error {
		return web.Respond(ctx, gin.H{"id": ctx.Param("id")}, http.StatusOK)
	}, PathParams("id"))

	w := do(app, http.MethodGet, "/items/%207%20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"7"}`, w.Body.String())

	w = do(app, http.MethodGet, "/items/%20", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"path parameter id cannot be empty"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	app := web.NewTestApp("test")
	app.Use(CORS(nil))
	app.Get("/x", func(ctx *gin.Context) error { return web.Respond(ctx, gin.H{}, http.StatusOK) })

	w := do(app, http.MethodOptions, "/x", map[string]string{
		"Origin":                        "http://agent.local",
		"Access-Control-Request-Method": http.MethodGet,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsCountsAnsweredStatus(t *testing.T) {
	app := newApp()
	app.Get("/productos/:query", func(ctx *gin.Context) error {
		if ctx.Param("query") == "missing" {
			return tabular.NotFound("Producto no encontrado.")
		}

		return web.Respond(ctx, gin.H{}, http.StatusOK)
	})

	counter := func(status string) float64 {
		return testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("test", http.MethodGet, "/productos/:query", status))
	}

	notFound, ok := counter("404"), counter("200")

	assert.Equal(t, http.StatusNotFound, do(app, http.MethodGet, "/productos/missing", nil).Code)
	assert.Equal(t, http.StatusOK, do(app, http.MethodGet, "/productos/P-1", nil).Code)

	assert.Equal(t, notFound+1, counter("404"))
	assert.Equal(t, ok+1, counter("200"))
}

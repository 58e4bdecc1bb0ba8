package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type codedErr struct{ status int }

func (e codedErr) Error() string   { return "coded failure" }
func (e codedErr) StatusCode() int { return e.status }

func serve(app *App, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	return w
}

func TestMiddlewareOrder(t *testing.T) {
	var calls []string

	trace := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx *gin.Context) error {
				calls = append(calls, name)
				return next(ctx)
			}
		}
	}

	app := NewTestApp("test", trace("app"))
	g := NewGroup(app, "/v1", trace("group"))
	g.Get("/ping", func(ctx *gin.Context) error {
		calls = append(calls, "handler")
		return Respond(ctx, gin.H{"ok": true}, http.StatusOK)
	}, trace("route"))

	w := serve(app, http.MethodGet, "/v1/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"app", "group", "route", "handler"}, calls)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "request error",
			err:    NewRequestError(errors.New("missing id"), http.StatusBadRequest),
			status: http.StatusBadRequest,
			body:   `{"error":"missing id"}`,
		},
		{
			name:   "status coder",
			err:    codedErr{http.StatusConflict},
			status: http.StatusConflict,
			body:   `{"error":"coded failure"}`,
		},
		{
			name:   "wrapped status coder",
			err:    errors.Join(errors.New("ctx"), codedErr{http.StatusNotFound}),
			status: http.StatusNotFound,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			assert.NoError(t, RespondError(ctx, tt.err))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.status, StatusOf(tt.err))

			if tt.body != "" {
				assert.Equal(t, tt.body, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}

func TestShutdownError(t *testing.T) {
	err := NewShutdownError("integrity")

	assert.True(t, IsShutdown(err))
	assert.False(t, IsShutdown(errors.New("integrity")))
}

func TestTranslateError(t *testing.T) {
	assert.Equal(t, NewRequestError(ErrNotFound, http.StatusNotFound), TranslateError(ErrNotFound))

	other := errors.New("other")
	assert.Equal(t, other, TranslateError(other))
}

type decodeTarget struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Count int    `json:"count"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "valid", body: `{"name":"Ana","email":"ana@example.com","count":2}`},
		{name: "not json", body: `{"name":`, wantStatus: http.StatusBadRequest, wantMsg: "invalid request body"},
		{name: "missing field", body: `{"count":1}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "name failed on the required rule"},
		{name: "bad email", body: `{"name":"Ana","email":"nope"}`, wantStatus: http.StatusUnprocessableEntity, wantMsg: "email failed on the email rule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			ctx.Request.Header.Set("Content-Type", "application/json")

			var got decodeTarget
			err := Decode(ctx, &got)

			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "Ana", got.Name)
				return
			}

			assert.Equal(t, tt.wantStatus, StatusOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

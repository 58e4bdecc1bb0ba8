package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
)

// Boom fails on purpose so error reporting can be checked from a local run.
// type=message reports without failing, type=error returns a 500 and any
// other type panics.
func Boom(ctx *gin.Context) error {
	msg := strings.TrimSpace("boom " + ctx.Query("message"))

	switch ctx.Query("type") {
	case "message":
		if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("source", "boom")
				hub.CaptureMessage(msg)
			})
		}

		return web.Respond(ctx, nil, http.StatusNoContent)
	case "error":
		return web.NewRequestError(errors.New(msg), http.StatusInternalServerError)
	default:
		panic(errors.New(msg))
	}
}

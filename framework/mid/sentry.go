package mid

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/internal"
)

const sentryFlushTimeout = 5 * time.Second

// withSentryScope runs capture on the request hub with the route, service and
// trace tagged. It is a no-op when Sentry is not initialized.
func withSentryScope(ctx *gin.Context, capture func(hub *sentry.Hub)) {
	hub := sentrygin.GetHubFromContext(ctx)
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("route", ctx.FullPath())

		if v, ok := internal.DataFromContext(ctx); ok {
			scope.SetTag("service", v.Service)
			scope.SetTag("trace", v.TraceID)
		}

		capture(hub)
	})
}

// Sentry reports server errors: those returned by the handler and those it
// answered with directly.
func Sentry() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			err := before(ctx)

			reported := err
			if reported == nil && ctx.Writer.Status() >= http.StatusInternalServerError {
				if last := ctx.Errors.Last(); last != nil {
					reported = last.Err
				}
			}

			if reported != nil && web.StatusOf(reported) >= http.StatusInternalServerError {
				withSentryScope(ctx, func(hub *sentry.Hub) { hub.CaptureMessage(reported.Error()) })
			}

			return err
		}

		return h
	}

	return f
}

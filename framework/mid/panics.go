package mid

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/internal"
	"github.com/doitintl/hello/agent-data-api/logger"
)

// Panics turns a panicking handler into a 500. The stack goes to the request log
// and the panic to Sentry.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			defer func() {
				r := recover()
				if r == nil {
					return
				}

				perr := fmt.Errorf("panic: %v", r)
				logger.FromContext(ctx).Errorf("[%s] %s: %s\n%s", v.Service, v.TraceID, perr, debug.Stack())

				withSentryScope(ctx, func(hub *sentry.Hub) {
					hub.Recover(perr)
					hub.Flush(sentryFlushTimeout)
				})

				err = web.NewRequestError(perr, http.StatusInternalServerError)
			}()

			return after(ctx)
		}

		return h
	}

	return f
}

package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/internal"
	"github.com/doitintl/hello/agent-data-api/logger"
)

var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger writes one entry per request once the handler returns:
// [service] trace: GET /data/:dataset (/data/bom) -> ip (status) (latency)
// Server errors are logged at error level, client errors at warning level.
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if quietPaths[ctx.Request.URL.Path] {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			err := before(ctx)

			status := v.Status(ctx.Writer.Status())
			if err != nil {
				status = web.StatusOf(err)
			}

			logf := log.Infof

			switch {
			case status >= http.StatusInternalServerError:
				logf = log.Errorf
			case status >= http.StatusBadRequest:
				logf = log.Warningf
			}

			logf("[%s] %s: %s %s (%s) -> %s (%d) (%s)",
				v.Service, v.TraceID,
				ctx.Request.Method, ctx.FullPath(), ctx.Request.URL.Path, ctx.ClientIP(),
				status, v.Elapsed(),
			)

			if err != nil {
				logf("[%s] %s: %s", v.Service, v.TraceID, err)
			}

			return err
		}

		return h
	}

	return f
}

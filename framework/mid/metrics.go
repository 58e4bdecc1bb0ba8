package mid

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/internal"
	"github.com/doitintl/hello/agent-data-api/metrics"
)

// Metrics records the count and latency of every request by route template.
// Register it outside Errors so the status is the one the client received.
func Metrics() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			started := time.Now()

			err := before(ctx)

			service := ""
			status := ctx.Writer.Status()

			if v, ok := internal.DataFromContext(ctx); ok {
				service = v.Service
				status = v.Status(status)
			}

			// An error still travelling outward has not been answered yet.
			if err != nil {
				status = web.StatusOf(err)
			}

			route := ctx.FullPath()
			method := ctx.Request.Method

			metrics.HTTPRequests.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPDuration.WithLabelValues(service, method, route).Observe(time.Since(started).Seconds())

			return err
		}

		return h
	}

	return f
}

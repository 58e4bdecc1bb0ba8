package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/internal"
	"github.com/doitintl/hello/agent-data-api/logger"
)

// Errors handles errors coming out of the call chain. Domain errors carrying a
// status are answered with it; anything else is a 500.
func Errors() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			if err := before(ctx); err != nil {
				if web.StatusOf(err) >= http.StatusInternalServerError {
					log.Errorf("%s: ERROR: %v", v.TraceID, err)
				} else {
					log.Warningf("%s: %v", v.TraceID, err)
				}

				_ = ctx.Error(err)

				if err := web.RespondError(ctx, err); err != nil {
					return err
				}

				// If we receive the shutdown err we need to return it
				// back to the base handler to shutdown the service.
				if ok := web.IsShutdown(err); ok {
					return err
				}
			}

			return nil
		}

		return h
	}

	return f
}

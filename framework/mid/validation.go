package mid

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/slice"
)

// PathParams rejects the request with 400 when any of the named path parameters
// is blank. Surrounding whitespace is trimmed from the values handed to the handler.
func PathParams(names ...string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			for i, p := range ctx.Params {
				if !slice.Contains(names, p.Key) {
					continue
				}

				value := strings.TrimSpace(p.Value)
				if value == "" {
					return web.NewRequestError(fmt.Errorf("path parameter %s cannot be empty", p.Key), http.StatusBadRequest)
				}

				ctx.Params[i].Value = value
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

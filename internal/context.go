package internal

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxDataKey stores the per-request Data on the gin context.
const CtxDataKey = "agent-data-api/request"

// Data is the state the web layer keeps for one request. StatusCode is the status
// the handler responded with, which may differ from the writer's when the body
// was never flushed.
type Data struct {
	TraceID    string
	Service    string
	StatusCode int
	Now        time.Time
}

// Elapsed is the time since the request entered the app.
func (d *Data) Elapsed() time.Duration {
	return time.Since(d.Now)
}

// Status prefers the recorded status over the fallback.
func (d *Data) Status(fallback int) int {
	if d.StatusCode != 0 {
		return d.StatusCode
	}

	return fallback
}

func ContextWithData(ctx *gin.Context, data *Data) {
	ctx.Set(CtxDataKey, data)
}

func DataFromContext(ctx *gin.Context) (*Data, bool) {
	v, ok := ctx.Value(CtxDataKey).(*Data)
	return v, ok
}

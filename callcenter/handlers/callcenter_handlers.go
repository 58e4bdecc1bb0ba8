package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	callcenter "github.com/doitintl/hello/agent-data-api/callcenter/domain"
	"github.com/doitintl/hello/agent-data-api/callcenter/service"
	"github.com/doitintl/hello/agent-data-api/callcenter/service/iface"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
)

const statusRunning = "Customer Support API running."

type CallCenter struct {
	loggerProvider logger.Provider
	service        iface.CallCenterIface
}

func NewCallCenter(log logger.Provider, conn *connection.Connection) (*CallCenter, error) {
	s, err := service.NewCallCenterService(log, conn)
	if err != nil {
		return nil, err
	}

	return &CallCenter{
		log,
		s,
	}, nil
}

// Warm loads the call records once. A failure is logged and the load is
// retried by the next request.
func (h *CallCenter) Warm(ctx context.Context) {
	l := h.loggerProvider(ctx)

	if err := h.service.Warm(ctx); err != nil {
		l.Errorf("error loading CSV: %v", err)
		return
	}

	l.Info("CSV loaded successfully.")
}

func (h *CallCenter) Root(ctx *gin.Context) error {
	return web.Respond(ctx, service.Status{Message: statusRunning}, http.StatusOK)
}

func (h *CallCenter) All(ctx *gin.Context) error {
	t, err := h.service.All(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *CallCenter) Search(ctx *gin.Context) error {
	var body callcenter.Query
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	res, err := h.service.Search(ctx, body)
	if err != nil {
		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *CallCenter) ByUser(ctx *gin.Context) error {
	t, err := h.service.ByUser(ctx, ctx.Param("usuario_id"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

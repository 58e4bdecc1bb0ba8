package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	reports "github.com/doitintl/hello/agent-data-api/reports/domain"
	"github.com/doitintl/hello/agent-data-api/reports/service"
	"github.com/doitintl/hello/agent-data-api/reports/service/iface"
)

type Reports struct {
	loggerProvider logger.Provider
	service        iface.ReportsIface
}

func NewReports(log logger.Provider, conn *connection.Connection) (*Reports, error) {
	s, err := service.NewReportsService(log, conn)
	if err != nil {
		return nil, err
	}

	return &Reports{
		log,
		s,
	}, nil
}

func (h *Reports) SendActivityReports(ctx *gin.Context) error {
	var payload reports.Payload
	if err := web.Decode(ctx, &payload); err != nil {
		return err
	}

	return web.Respond(ctx, h.service.SendActivityReports(ctx, payload), http.StatusOK)
}

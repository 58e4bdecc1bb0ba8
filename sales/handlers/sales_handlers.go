package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	sales "github.com/doitintl/hello/agent-data-api/sales/domain"
	"github.com/doitintl/hello/agent-data-api/sales/service"
	"github.com/doitintl/hello/agent-data-api/sales/service/iface"
)

const statusRunning = "API de Productos y Ventas operativa 🚀"

type Sales struct {
	loggerProvider logger.Provider
	service        iface.SalesIface
}

func NewSales(log logger.Provider, conn *connection.Connection) (*Sales, error) {
	s, err := service.NewSalesService(log, conn)
	if err != nil {
		return nil, err
	}

	return &Sales{
		log,
		s,
	}, nil
}

func (h *Sales) Root(ctx *gin.Context) error {
	return web.Respond(ctx, service.Status{Status: statusRunning}, http.StatusOK)
}

func (h *Sales) ListProducts(ctx *gin.Context) error {
	t, err := h.service.ListProducts(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *Sales) SearchProducts(ctx *gin.Context) error {
	t, err := h.service.SearchProducts(ctx, ctx.Param("query"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *Sales) ListSales(ctx *gin.Context) error {
	t, err := h.service.ListSales(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *Sales) AddSale(ctx *gin.Context) error {
	var body sales.Sale
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	res, err := h.service.AddSale(ctx, body)
	if err != nil {
		if errors.Is(err, sales.ErrProductNotInCatalog) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

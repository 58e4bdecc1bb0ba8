package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	supplychain "github.com/doitintl/hello/agent-data-api/supplychain/domain"
	"github.com/doitintl/hello/agent-data-api/supplychain/service"
	"github.com/doitintl/hello/agent-data-api/supplychain/service/iface"
)

const statusRunning = "API de Inventario operativa 🚀"

type SupplyChain struct {
	loggerProvider logger.Provider
	service        iface.SupplyChainIface
}

func NewSupplyChain(log logger.Provider, conn *connection.Connection) (*SupplyChain, error) {
	s, err := service.NewSupplyChainService(log, conn)
	if err != nil {
		return nil, err
	}

	return &SupplyChain{
		log,
		s,
	}, nil
}

func (h *SupplyChain) Root(ctx *gin.Context) error {
	return web.Respond(ctx, service.Status{Status: statusRunning}, http.StatusOK)
}

func (h *SupplyChain) Inventory(ctx *gin.Context) error {
	t, err := h.service.Inventory(ctx, ctx.Param("numero_parte"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *SupplyChain) Transit(ctx *gin.Context) error {
	t, err := h.service.Transit(ctx, ctx.Param("numero_parte"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *SupplyChain) ListOrders(ctx *gin.Context) error {
	t, err := h.service.ListOrders(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *SupplyChain) AddOrder(ctx *gin.Context) error {
	var body supplychain.Order
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	res, err := h.service.AddOrder(ctx, body)
	if err != nil {
		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *SupplyChain) CreateAutomaticOrder(ctx *gin.Context) error {
	res, err := h.service.CreateAutomaticOrder(ctx, ctx.Param("numero_parte"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

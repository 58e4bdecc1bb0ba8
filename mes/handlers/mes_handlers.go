package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	mes "github.com/doitintl/hello/agent-data-api/mes/domain"
	"github.com/doitintl/hello/agent-data-api/mes/service"
	"github.com/doitintl/hello/agent-data-api/mes/service/iface"
)

type MES struct {
	loggerProvider logger.Provider
	service        iface.MESIface
}

func NewMES(log logger.Provider) *MES {
	return &MES{
		log,
		service.NewMESService(log),
	}
}

func (h *MES) Root(ctx *gin.Context) error {
	return web.Respond(ctx, h.service.Index(), http.StatusOK)
}

func (h *MES) ListOrders(ctx *gin.Context) error {
	records, err := h.service.ListOrders(ctx)
	return web.RespondResult(ctx, records, err)
}

func (h *MES) ActiveOrders(ctx *gin.Context) error {
	records, err := h.service.ActiveOrders(ctx)
	return web.RespondResult(ctx, records, err)
}

func (h *MES) ListDowntime(ctx *gin.Context) error {
	records, err := h.service.ListDowntime(ctx)
	return web.RespondResult(ctx, records, err)
}

func (h *MES) ListScrap(ctx *gin.Context) error {
	records, err := h.service.ListScrap(ctx)
	return web.RespondResult(ctx, records, err)
}

func (h *MES) AssignedStaff(ctx *gin.Context) error {
	records, err := h.service.AssignedStaff(ctx)
	return web.RespondResult(ctx, records, err)
}

func (h *MES) MaterialConsumption(ctx *gin.Context) error {
	records, err := h.service.MaterialConsumption(ctx, ctx.Param("orden_id"))
	return web.RespondResult(ctx, records, err)
}

func (h *MES) CurrentProduction(ctx *gin.Context) error {
	lines, err := h.service.CurrentProduction(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, lines, http.StatusOK)
}

func (h *MES) AnalyzeShift(ctx *gin.Context) error {
	var req service.ShiftRequest
	if err := web.Decode(ctx, &req); err != nil {
		return err
	}

	analysis, err := h.service.AnalyzeShift(ctx, req)
	if errors.Is(err, mes.ErrNoActiveOrder) {
		return web.Respond(ctx, gin.H{"mensaje": err.Error()}, http.StatusOK)
	}

	if err != nil {
		return err
	}

	return web.Respond(ctx, analysis, http.StatusOK)
}

func (h *MES) MissingMaterials(ctx *gin.Context) error {
	var req service.MaterialRequest
	if err := web.Decode(ctx, &req); err != nil {
		return err
	}

	res, err := h.service.MissingMaterials(ctx, req)
	if err != nil {
		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *MES) ComputeOEE(ctx *gin.Context) error {
	res, err := h.service.ComputeOEE(ctx, ctx.Param("linea"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

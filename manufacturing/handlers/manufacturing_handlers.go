package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
	manufacturing "github.com/doitintl/hello/agent-data-api/manufacturing/domain"
	"github.com/doitintl/hello/agent-data-api/manufacturing/service"
	"github.com/doitintl/hello/agent-data-api/manufacturing/service/iface"
)

type Manufacturing struct {
	loggerProvider logger.Provider
	service        iface.ManufacturingIface
}

func NewManufacturing(log logger.Provider, conn *connection.Connection) (*Manufacturing, error) {
	s, err := service.NewManufacturingService(log, conn)
	if err != nil {
		return nil, err
	}

	return &Manufacturing{
		log,
		s,
	}, nil
}

func (h *Manufacturing) Root(ctx *gin.Context) error {
	return web.Respond(ctx, h.service.Status(), http.StatusOK)
}

func (h *Manufacturing) Guide(ctx *gin.Context) error {
	return web.Respond(ctx, h.service.Guide(), http.StatusOK)
}

func (h *Manufacturing) QueryData(ctx *gin.Context) error {
	var req service.DataRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.Dataset = ctx.Param("dataset")

	res, err := h.service.QueryData(ctx, req)
	if err != nil {
		return datasetError(err)
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *Manufacturing) GetPart(ctx *gin.Context) error {
	res, err := h.service.GetPart(ctx, ctx.Param("part_number"))
	if err != nil {
		return datasetError(err)
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *Manufacturing) AddFiveWhys(ctx *gin.Context) error {
	var body manufacturing.FiveWhys
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	res, err := h.service.AddFiveWhys(ctx, body)
	if err != nil {
		return datasetError(err)
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func datasetError(err error) error {
	if errors.Is(err, manufacturing.ErrInvalidDataset) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return err
}

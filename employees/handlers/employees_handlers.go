package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	employees "github.com/doitintl/hello/agent-data-api/employees/domain"
	"github.com/doitintl/hello/agent-data-api/employees/service"
	"github.com/doitintl/hello/agent-data-api/employees/service/iface"
	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/framework/web"
	"github.com/doitintl/hello/agent-data-api/logger"
)

const exactParam = "exact"

var errInvalidUserID = errors.New("user_id must be an integer")

type Employees struct {
	loggerProvider logger.Provider
	service        iface.EmployeesIface
}

func NewEmployees(log logger.Provider, conn *connection.Connection) *Employees {
	return &Employees{
		log,
		service.NewEmployeesService(log, conn),
	}
}

func userID(ctx *gin.Context) (string, error) {
	id, err := employees.ParseID(ctx.Param("user_id"))
	if err != nil {
		return "", web.NewRequestError(errInvalidUserID, http.StatusUnprocessableEntity)
	}

	return id, nil
}

func (h *Employees) ListUsers(ctx *gin.Context) error {
	t, err := h.service.ListUsers(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *Employees) GetUser(ctx *gin.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	t, err := h.service.GetUser(ctx, id)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records()[0], http.StatusOK)
}

// SearchUsers treats every query parameter but exact as a column filter.
func (h *Employees) SearchUsers(ctx *gin.Context) error {
	req := service.SearchRequest{Filters: make(map[string]string)}

	for key, values := range ctx.Request.URL.Query() {
		if key == exactParam {
			exact, err := strconv.ParseBool(values[0])
			if err != nil {
				return web.NewRequestError(err, http.StatusBadRequest)
			}

			req.Exact = exact

			continue
		}

		req.Filters[key] = values[0]
	}

	t, err := h.service.SearchUsers(ctx, req)
	if err != nil {
		return err
	}

	return web.Respond(ctx, t.Records(), http.StatusOK)
}

func (h *Employees) CreateUser(ctx *gin.Context) error {
	var body employees.User
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	user, err := h.service.CreateUser(ctx, body)
	if err != nil {
		return err
	}

	return web.Respond(ctx, user, http.StatusCreated)
}

func (h *Employees) UpdateField(ctx *gin.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	var body employees.FieldUpdate
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	res, err := h.service.UpdateField(ctx, id, body)
	if err != nil {
		return err
	}

	return web.Respond(ctx, res, http.StatusOK)
}

func (h *Employees) ReplaceUser(ctx *gin.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	var body employees.User
	if err := web.Decode(ctx, &body); err != nil {
		return err
	}

	user, err := h.service.ReplaceUser(ctx, id, body)
	if err != nil {
		return err
	}

	return web.Respond(ctx, user, http.StatusOK)
}

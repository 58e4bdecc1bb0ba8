package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/hello/agent-data-api/framework/web"
)

func Health(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}

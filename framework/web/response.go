package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/doitintl/hello/agent-data-api/internal"
)

const jsonContentType = "application/json; charset=utf-8"

// Respond encodes data as JSON and sends it with statusCode. A nil body or a
// 204 only writes the status.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	if v, ok := internal.DataFromContext(ctx); ok {
		v.StatusCode = statusCode
	}

	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	body, err := json.Marshal(data)
	if err != nil {
		return err
	}

	ctx.Data(statusCode, jsonContentType, body)

	return nil
}

// RespondResult sends data with 200 unless the operation producing it failed.
func RespondResult[T any](ctx *gin.Context, data T, err error) error {
	if err != nil {
		return err
	}

	return Respond(ctx, data, http.StatusOK)
}

// RespondError sends {"error": msg} with the status the error carries, or a
// generic 500 when it carries none.
func RespondError(ctx *gin.Context, err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		return Respond(ctx, ErrorResponse{Error: webErr.Err.Error()}, webErr.Status)
	}

	var coded statusCoder
	if errors.As(err, &coded) {
		return Respond(ctx, ErrorResponse{Error: err.Error()}, coded.StatusCode())
	}

	return Respond(ctx, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
}

package callcenter

import (
	"errors"
	"net/http"
)

const ColumnUser = "Usuario"

var ErrUserNotFound = errors.New("Usuario no encontrado")

// Query selects call records whose field contains value.
type Query struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// InvalidFieldError reports a search on a column the dataset does not have.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return "Invalid field " + e.Field
}

func (e *InvalidFieldError) StatusCode() int {
	return http.StatusBadRequest
}

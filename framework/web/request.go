package web

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name == "" {
			return f.Name
		}

		return name
	})

	return v
}

// Decode reads the JSON body into v and checks its validate tags. A body that is
// not JSON is a bad request; a body breaking the schema is unprocessable.
func Decode(ctx *gin.Context, v interface{}) error {
	if err := ctx.ShouldBindJSON(v); err != nil {
		return NewRequestError(fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
	}

	return Validate(v)
}

// Validate checks the validate tags of v.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewRequestError(err, http.StatusUnprocessableEntity)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag()))
	}

	return NewRequestError(errors.New("invalid request: "+strings.Join(msgs, ", ")), http.StatusUnprocessableEntity)
}

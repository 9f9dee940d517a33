// Package httperror renders the error bodies of the API.
package httperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error is the body of every error response.
type Error struct {
	Message string `json:"message" example:"Expense not found"`
	Code    int    `json:"code" example:"404"`

	// Fields enumerates per-field validation failures, only set on 422
	// responses.
	Fields map[string]string `json:"fields,omitempty"`
}

// New writes an error response with the given status and message.
func New(c *gin.Context, status int, message string) {
	c.JSON(status, Error{
		Message: message,
		Code:    status,
	})
}

// Unprocessable writes a 422 response enumerating which fields failed
// validation and why.
func Unprocessable(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Error{
		Message: "validation failed",
		Code:    http.StatusUnprocessableEntity,
		Fields:  fields,
	})
}

// Fields converts binding errors into a per-field description. It returns nil
// when err does not carry field-level detail.
func Fields(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field()] = validationErrorText(e)
	}

	return fields
}

func validationErrorText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("cannot be longer than %s", e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "len":
		return fmt.Sprintf("must be %s characters long", e.Param())
	}

	return "is not valid"
}

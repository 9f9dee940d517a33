// Package v1 implements the HTTP API.
package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Controller holds the dependencies of the route handlers. The store is
// whichever backend was selected at startup.
type Controller struct {
	store storage.Store
	auth  *auth.Auth
}

func NewController(store storage.Store, auth *auth.Auth) Controller {
	return Controller{store: store, auth: auth}
}

func optionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

func optionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

func optionsGetPatch(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PATCH")
	c.Status(http.StatusNoContent)
}

func optionsGetPatchDelete(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PATCH, DELETE")
	c.Status(http.StatusNoContent)
}

func optionsPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, POST")
	c.Status(http.StatusNoContent)
}

// bindData binds the request body to the struct passed in and writes the
// error response when binding fails.
func bindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			httperror.New(c, http.StatusBadRequest, "request body must not be empty")
			return err
		}

		if fields := httperror.Fields(err); fields != nil {
			httperror.Unprocessable(c, fields)
			return err
		}

		httperror.New(c, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data")
		return err
	}

	return nil
}

// validAmount writes a 422 response and returns false when the amount is
// negative or more precise than cents.
func validAmount(c *gin.Context, amount decimal.Decimal) bool {
	var reason string
	switch {
	case amount.IsNegative():
		reason = "must not be negative"
	case amount.Exponent() < -2:
		reason = "must not have more than 2 decimal places"
	default:
		return true
	}

	httperror.Unprocessable(c, map[string]string{"amount": reason})
	return false
}

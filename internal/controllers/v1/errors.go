package v1

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/storage"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// renderError writes the response for a storage error.
func renderError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		httperror.New(c, http.StatusNotFound, err.Error())
		return
	}

	var conflict storage.ConflictError
	if errors.As(err, &conflict) {
		httperror.Unprocessable(c, map[string]string{conflict.Field: "is already in use"})
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
	httperror.New(c, http.StatusInternalServerError, storage.ErrGeneral.Error())
}

// forbidden writes a 403 response for a resource owned by someone else.
func forbidden(c *gin.Context) {
	httperror.New(c, http.StatusForbidden, "you do not have access to this resource")
}

// ownedBy reports whether the request may access a resource owned by the
// given principal. Resources without an owner are accessible to everyone.
func ownedBy(c *gin.Context, owner string) bool {
	if owner == "" {
		return true
	}

	principal, ok := auth.Principal(c)
	return ok && principal == owner
}

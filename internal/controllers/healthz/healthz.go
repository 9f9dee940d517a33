// Package healthz reports whether the backend connection is usable.
package healthz

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health check routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, store storage.Store) {
	r.OPTIONS("", Options)
	r.GET("", Get(store))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		503	{object}	httperror.Error
// @Router			/healthz [get]
func Get(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			httperror.New(c, http.StatusServiceUnavailable, "the database connection is not available")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

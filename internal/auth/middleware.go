package auth

import (
	"net/http"
	"strings"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/gin-gonic/gin"
)

const principalKey = "auth-principal"

// Middleware authenticates requests that carry an Authorization header.
//
// Requests without the header proceed unauthenticated: the routes themselves
// are public and only the ownership checks care about the principal. A header
// that is present but does not hold a valid bearer token aborts the request
// with a 401 and a WWW-Authenticate challenge.
func (a *Auth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			Unauthorized(c)
			return
		}

		principal, err := a.VerifyToken(tokenString)
		if err != nil {
			Unauthorized(c)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// Principal returns the authenticated principal of the request, if any.
func Principal(c *gin.Context) (string, bool) {
	principal := c.GetString(principalKey)
	return principal, principal != ""
}

// Unauthorized aborts the request with a 401 and the bearer challenge.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	httperror.New(c, http.StatusUnauthorized, ErrInvalidToken.Error())
	c.Abort()
}

package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Budgets    string `json:"budgets" example:"/api/v1/postgres/budgets"`
	Categories string `json:"categories" example:"/api/v1/postgres/categories"`
	Expenses   string `json:"expenses" example:"/api/v1/postgres/expenses"`
	Income     string `json:"income" example:"/api/v1/postgres/income"`
	Token      string `json:"token" example:"/api/v1/postgres/auth/token"`
}

// RegisterRootRoutes registers the routes for the API root with
// the RouterGroup that is passed.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsRoot)
	r.GET("", co.GetRoot)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	optionsGet(c)
}

// @Summary		API root
// @Description	Returns the links to the resources of the API
// @Tags			General
// @Produce		json
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func (co Controller) GetRoot(c *gin.Context) {
	prefix := strings.TrimSuffix(c.Request.URL.Path, "/")

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Budgets:    prefix + "/budgets",
			Categories: prefix + "/categories",
			Expenses:   prefix + "/expenses",
			Income:     prefix + "/income",
			Token:      prefix + "/auth/token",
		},
	})
}

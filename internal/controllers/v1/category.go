package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	optionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the category"
// @Router			/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	_, err := co.store.Categories().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	optionsGet(c)
}

// @Summary		List categories
// @Description	Returns all categories
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		500	{object}	httperror.Error
// @Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.store.Categories().List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	models.Category
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the category"
// @Router			/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := co.store.Categories().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		422			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		models.CategoryEditable	true	"Category"
// @Router			/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable models.CategoryEditable
	if err := bindData(c, &editable); err != nil {
		return
	}

	category, err := co.store.Categories().Create(c.Request.Context(), editable)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsIncomeList)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", co.OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/income [options]
func (co Controller) OptionsIncomeList(c *gin.Context) {
	optionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the income"
// @Router			/income/{id} [options]
func (co Controller) OptionsIncomeDetail(c *gin.Context) {
	_, err := co.store.Incomes().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	optionsGet(c)
}

// @Summary		List incomes
// @Description	Returns all incomes
// @Tags			Income
// @Produce		json
// @Success		200	{array}		models.Income
// @Failure		500	{object}	httperror.Error
// @Router			/income [get]
func (co Controller) GetIncomes(c *gin.Context) {
	incomes, err := co.store.Incomes().List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Income
// @Produce		json
// @Success		200	{object}	models.Income
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the income"
// @Router			/income/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	income, err := co.store.Incomes().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

// @Summary		Create income
// @Description	Creates a new income
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Income
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			income	body		models.IncomeEditable	true	"Income"
// @Router			/income [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var editable models.IncomeEditable
	if err := bindData(c, &editable); err != nil {
		return
	}

	if !validAmount(c, *editable.Amount) {
		return
	}

	income, err := co.store.Incomes().Create(c.Request.Context(), editable)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, income)
}

package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	optionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the budget"
// @Router			/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	_, err := co.store.Budgets().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	optionsGetPatch(c)
}

// @Summary		List budgets
// @Description	Returns all budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		500	{object}	httperror.Error
// @Router			/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.store.Budgets().List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	models.Budget
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the budget"
// @Router			/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, err := co.store.Budgets().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	if !ownedBy(c, budget.Owner) {
		forbidden(c)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Create budget
// @Description	Creates a new budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Budget
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		models.BudgetEditable	true	"Budget"
// @Router			/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable models.BudgetEditable
	if err := bindData(c, &editable); err != nil {
		return
	}

	if !validAmount(c, *editable.Amount) {
		return
	}

	owner, _ := auth.Principal(c)
	budget, err := co.store.Budgets().Create(c.Request.Context(), editable, owner)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// @Summary		Update budget
// @Description	Updates an existing budget. All fields must be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Budget
// @Failure		403		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string					true	"ID of the budget"
// @Param			budget	body		models.BudgetEditable	true	"Budget"
// @Router			/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	id := models.ParseID(c.Param("id"))

	budget, err := co.store.Budgets().Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	if !ownedBy(c, budget.Owner) {
		forbidden(c)
		return
	}

	var editable models.BudgetEditable
	if err := bindData(c, &editable); err != nil {
		return
	}

	if !validAmount(c, *editable.Amount) {
		return
	}

	budget, err = co.store.Budgets().Update(c.Request.Context(), id, editable)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

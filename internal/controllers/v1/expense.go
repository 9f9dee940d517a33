package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	optionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	_, err := co.store.Expenses().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	optionsGetPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns all expenses with their category and budget resolved
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		models.Expense
// @Failure		500	{object}	httperror.Error
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	expenses, err := co.store.Expenses().List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary		Get expense
// @Description	Returns a specific expense with its category and budget resolved
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, err := co.store.Expenses().Get(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		renderError(c, err)
		return
	}

	if !ownedBy(c, expense.Owner) {
		forbidden(c)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Create expense
// @Description	Creates a new expense. The referenced category and budget must exist.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Expense
// @Failure		404		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable models.ExpenseEditable
	if err := bindData(c, &editable); err != nil {
		return
	}

	if !validAmount(c, *editable.Amount) {
		return
	}

	owner, _ := auth.Principal(c)
	expense, err := co.store.Expenses().Create(c.Request.Context(), editable, owner)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// @Summary		Update expense
// @Description	Updates an existing expense. All fields must be specified and are replaced as a unit.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Expense
// @Failure		403		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string					true	"ID of the expense"
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	id := models.ParseID(c.Param("id"))

	expense, err := co.store.Expenses().Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	if !ownedBy(c, expense.Owner) {
		forbidden(c)
		return
	}

	var editable models.ExpenseEditable
	if err := bindData(c, &editable); err != nil {
		return
	}

	if !validAmount(c, *editable.Amount) {
		return
	}

	expense, err = co.store.Expenses().Update(c.Request.Context(), id, editable)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id := models.ParseID(c.Param("id"))

	expense, err := co.store.Expenses().Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	if !ownedBy(c, expense.Owner) {
		forbidden(c)
		return
	}

	if err := co.store.Expenses().Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

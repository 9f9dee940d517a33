package v1_test

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) createExpense(editable models.ExpenseEditable, headers ...map[string]string) models.Expense {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/expenses", editable, headers...)
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var expense models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)

	return expense
}

func (suite *TestSuiteStandard) TestExpenseLifecycle() {
	category := suite.createCategory("Travel")
	budget := suite.createBudget("Vacation", "2000")

	created := suite.createExpense(models.ExpenseEditable{
		Name:       "Flight",
		Amount:     test.Decimal("250.50"),
		CategoryID: category.ID,
		BudgetID:   budget.ID,
	})

	// The response nests the resolved category and budget
	suite.Assert().Equal("Travel", created.Category.Name)
	suite.Require().NotNil(created.Budget)
	suite.Assert().Equal("Vacation", created.Budget.Name)

	// Update replaces all fields and clears the budget reference
	recorder := test.Request(suite.T(), suite.router, "PATCH", fmt.Sprintf("%s/expenses/%s", prefix, created.ID),
		models.ExpenseEditable{
			Name:       "Train",
			Amount:     test.Decimal("99.99"),
			CategoryID: category.ID,
		})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Train", updated.Name)
	suite.Assert().Nil(updated.Budget)

	recorder = test.Request(suite.T(), suite.router, "DELETE", fmt.Sprintf("%s/expenses/%s", prefix, created.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)

	recorder = test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/expenses/%s", prefix, created.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestExpenseList() {
	category := suite.createCategory("Travel")
	suite.createExpense(models.ExpenseEditable{
		Name:       "Flight",
		Amount:     test.Decimal("250.50"),
		CategoryID: category.ID,
	})

	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expenses)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("Travel", expenses[0].Category.Name)
	suite.Assert().Nil(expenses[0].Budget)
}

func (suite *TestSuiteStandard) TestExpenseDanglingReferences() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/expenses",
		models.ExpenseEditable{
			Name:       "Flight",
			Amount:     test.Decimal("250.50"),
			CategoryID: models.NumericID(999),
		})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Category not found", response.Message)

	category := suite.createCategory("Travel")
	recorder = test.Request(suite.T(), suite.router, "POST", prefix+"/expenses",
		models.ExpenseEditable{
			Name:       "Flight",
			Amount:     test.Decimal("250.50"),
			CategoryID: category.ID,
			BudgetID:   models.NumericID(999),
		})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Budget not found", response.Message)
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/expenses", `{"amount": 5}`)
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("is required", response.Fields["name"])
	suite.Assert().Equal("is required", response.Fields["category_id"])

	recorder = test.Request(suite.T(), suite.router, "POST", prefix+"/expenses", `{"name": "Flight"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("is required", response.Fields["amount"])
	suite.Assert().Equal("is required", response.Fields["category_id"])
}

func (suite *TestSuiteStandard) TestExpenseOwnership() {
	category := suite.createCategory("Travel")
	token := suite.token()

	expense := suite.createExpense(models.ExpenseEditable{
		Name:       "Flight",
		Amount:     test.Decimal("250.50"),
		CategoryID: category.ID,
	}, authorization(token))

	// Not accessible without authentication
	recorder := test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/expenses/%s", prefix, expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 403)

	recorder = test.Request(suite.T(), suite.router, "DELETE", fmt.Sprintf("%s/expenses/%s", prefix, expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 403)

	// The owner can delete it
	recorder = test.Request(suite.T(), suite.router, "DELETE", fmt.Sprintf("%s/expenses/%s", prefix, expense.ID), nil, authorization(token))
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	category := suite.createCategory("Travel")
	expense := suite.createExpense(models.ExpenseEditable{
		Name:       "Flight",
		Amount:     test.Decimal("250.50"),
		CategoryID: category.ID,
	})

	recorder := test.Request(suite.T(), suite.router, "OPTIONS", prefix+"/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, "OPTIONS", fmt.Sprintf("%s/expenses/%s", prefix, expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

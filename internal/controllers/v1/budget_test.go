package v1_test

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createBudget(name string, amount string, headers ...map[string]string) models.Budget {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/budgets",
		models.BudgetEditable{Name: name, Amount: test.Decimal(amount)}, headers...)
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budget)

	return budget
}

func (suite *TestSuiteStandard) TestBudgetCreateAndList() {
	suite.createBudget("Monthly", "5000")

	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal("Monthly", budgets[0].Name)
	suite.Assert().True(budgets[0].Amount.Equal(decimal.RequireFromString("5000")))
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget := suite.createBudget("Monthly", "5000")

	recorder := test.Request(suite.T(), suite.router, "PATCH", fmt.Sprintf("%s/budgets/%s", prefix, budget.ID),
		models.BudgetEditable{Name: "Monthly Budget", Amount: test.Decimal("4500.50")})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var updated models.Budget
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Monthly Budget", updated.Name)
	suite.Assert().True(updated.Amount.Equal(decimal.RequireFromString("4500.50")))
}

func (suite *TestSuiteStandard) TestBudgetNotFound() {
	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/budgets/999", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)

	recorder = test.Request(suite.T(), suite.router, "PATCH", prefix+"/budgets/999",
		models.BudgetEditable{Name: "x"})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestBudgetAmountValidation() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/budgets",
		models.BudgetEditable{Name: "Bad", Amount: test.Decimal("-1")})
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("must not be negative", response.Fields["amount"])

	recorder = test.Request(suite.T(), suite.router, "POST", prefix+"/budgets",
		models.BudgetEditable{Name: "Bad", Amount: test.Decimal("1.999")})
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("must not have more than 2 decimal places", response.Fields["amount"])
}

func (suite *TestSuiteStandard) TestBudgetMissingAmount() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/budgets", `{"name": "Monthly"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("is required", response.Fields["amount"])

	// An explicit zero is a valid amount
	recorder = test.Request(suite.T(), suite.router, "POST", prefix+"/budgets", `{"name": "Monthly", "amount": 0}`)
	test.AssertHTTPStatus(suite.T(), &recorder, 201)
}

func (suite *TestSuiteStandard) TestBudgetOwnership() {
	token := suite.token()
	budget := suite.createBudget("Private", "1000", authorization(token))

	// The budget is not accessible without authentication
	recorder := test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/budgets/%s", prefix, budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 403)

	recorder = test.Request(suite.T(), suite.router, "PATCH", fmt.Sprintf("%s/budgets/%s", prefix, budget.ID),
		models.BudgetEditable{Name: "Hijacked", Amount: test.Decimal("1")})
	test.AssertHTTPStatus(suite.T(), &recorder, 403)

	// The owner can read and update it
	recorder = test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/budgets/%s", prefix, budget.ID), nil, authorization(token))
	test.AssertHTTPStatus(suite.T(), &recorder, 200)
}

func (suite *TestSuiteStandard) TestBudgetWithoutOwnerIsPublic() {
	budget := suite.createBudget("Shared", "1000")

	recorder := test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/budgets/%s", prefix, budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	budget := suite.createBudget("Monthly", "5000")

	recorder := test.Request(suite.T(), suite.router, "OPTIONS", prefix+"/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, "OPTIONS", fmt.Sprintf("%s/budgets/%s", prefix, budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET, PATCH", recorder.Header().Get("allow"))
}

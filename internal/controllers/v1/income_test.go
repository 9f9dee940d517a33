package v1_test

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestIncomeCreateAndGet() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/income",
		models.IncomeEditable{Name: "Salary", Amount: test.Decimal("3200")})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var created models.Income
	test.DecodeResponse(suite.T(), &recorder, &created)
	suite.Assert().Equal("Salary", created.Name)

	recorder = test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/income/%s", prefix, created.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var income models.Income
	test.DecodeResponse(suite.T(), &recorder, &income)
	suite.Assert().Equal(created, income)
}

func (suite *TestSuiteStandard) TestIncomeList() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/income",
		models.IncomeEditable{Name: "Salary", Amount: test.Decimal("3200")})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	recorder = test.Request(suite.T(), suite.router, "GET", prefix+"/income", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var incomes []models.Income
	test.DecodeResponse(suite.T(), &recorder, &incomes)
	suite.Assert().Len(incomes, 1)
}

func (suite *TestSuiteStandard) TestIncomeMissingAmount() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/income", `{"name": "Salary"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("is required", response.Fields["amount"])
}

func (suite *TestSuiteStandard) TestIncomeNotFound() {
	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/income/999", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

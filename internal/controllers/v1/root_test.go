package v1_test

import (
	v1 "github.com/expense-tracker/backend/internal/controllers/v1"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), suite.router, "GET", prefix, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(v1.RootLinks{
		Budgets:    prefix + "/budgets",
		Categories: prefix + "/categories",
		Expenses:   prefix + "/expenses",
		Income:     prefix + "/income",
		Token:      prefix + "/auth/token",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	recorder := test.Request(suite.T(), suite.router, "OPTIONS", prefix, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

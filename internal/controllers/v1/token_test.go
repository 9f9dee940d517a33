package v1_test

import (
	"net/url"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestTokenIssue() {
	form := url.Values{"username": {"admin"}, "password": {"admin"}}
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/auth/token",
		form.Encode(), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.AccessToken)
	suite.Assert().Equal("bearer", response.TokenType)
}

func (suite *TestSuiteStandard) TestTokenWrongPassword() {
	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/auth/token",
		form.Encode(), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	test.AssertHTTPStatus(suite.T(), &recorder, 401)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("incorrect username or password", response.Message)
}

func (suite *TestSuiteStandard) TestTokenMissingFields() {
	form := url.Values{"username": {"admin"}}
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/auth/token",
		form.Encode(), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("is required", response.Fields["password"])
}

func (suite *TestSuiteStandard) TestInvalidBearerToken() {
	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/categories", nil,
		authorization("not-a-valid-token"))
	test.AssertHTTPStatus(suite.T(), &recorder, 401)
	suite.Assert().Equal("Bearer", recorder.Header().Get("WWW-Authenticate"))

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("could not validate credentials", response.Message)
}

func (suite *TestSuiteStandard) TestMalformedAuthorizationHeader() {
	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/categories", nil,
		map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
	test.AssertHTTPStatus(suite.T(), &recorder, 401)
}

func (suite *TestSuiteStandard) TestTokenOptions() {
	recorder := test.Request(suite.T(), suite.router, "OPTIONS", prefix+"/auth/token", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

package v1_test

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) createCategory(name string) models.Category {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/categories",
		models.CategoryEditable{Name: name})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var category models.Category
	test.DecodeResponse(suite.T(), &recorder, &category)

	return category
}

func (suite *TestSuiteStandard) TestCategoryCreateAndGet() {
	created := suite.createCategory("Groceries")
	suite.Assert().Equal("Groceries", created.Name)
	suite.Assert().False(created.ID.IsZero())

	recorder := test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("%s/categories/%s", prefix, created.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var category models.Category
	test.DecodeResponse(suite.T(), &recorder, &category)
	suite.Assert().Equal(created, category)
}

func (suite *TestSuiteStandard) TestCategoryList() {
	suite.createCategory("Groceries")
	suite.createCategory("Travel")

	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &recorder, &categories)
	suite.Assert().Len(categories, 2)
}

func (suite *TestSuiteStandard) TestCategoryNotFound() {
	recorder := test.Request(suite.T(), suite.router, "GET", prefix+"/categories/999", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Category not found", response.Message)
	suite.Assert().Equal(404, response.Code)
}

func (suite *TestSuiteStandard) TestCategoryDuplicateName() {
	suite.createCategory("Groceries")

	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/categories",
		models.CategoryEditable{Name: "Groceries"})
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("validation failed", response.Message)
	suite.Assert().Contains(response.Fields, "name")
}

func (suite *TestSuiteStandard) TestCategoryMissingName() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/categories", `{}`)
	test.AssertHTTPStatus(suite.T(), &recorder, 422)

	var response httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("is required", response.Fields["name"])
}

func (suite *TestSuiteStandard) TestCategoryEmptyBody() {
	recorder := test.Request(suite.T(), suite.router, "POST", prefix+"/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestCategoryOptions() {
	created := suite.createCategory("Groceries")

	recorder := test.Request(suite.T(), suite.router, "OPTIONS", prefix+"/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, "OPTIONS", fmt.Sprintf("%s/categories/%s", prefix, created.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, "OPTIONS", prefix+"/categories/999", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocketwise/backend/internal/controllers/v1"
	"github.com/pocketwise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})

	category := suite.createTestCategory(v1.CategoryEditable{
		GroupID:      group.Data.ID,
		Name:         "Groceries",
		Emoji:        "🛒",
		TargetAmount: decimal.NewFromInt(400),
		TargetType:   "monthly",
	})

	assert := suite.Assert()
	assert.Equal("Groceries", category.Data.Name)
	assert.Equal("🛒", category.Data.Emoji)
	assert.True(category.Data.TargetAmount.Equal(decimal.NewFromInt(400)), "target amount is %s", category.Data.TargetAmount)
}

func (suite *TestSuiteStandard) TestCategoryCreateGroupMissing() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		GroupID: uuid.New(),
		Name:    "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalidTargetType() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		GroupID:    group.Data.ID,
		Name:       "Groceries",
		TargetType: "weekly",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryCreateTooPreciseTarget() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		GroupID:      group.Data.ID,
		Name:         "Groceries",
		TargetAmount: decimal.NewFromFloat(400.999),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryCreateDuplicateNameInGroup() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		GroupID: group.Data.ID,
		Name:    "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// The same name is fine in another group
	other := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Fixed costs"})
	suite.createTestCategory(v1.CategoryEditable{GroupID: other.Data.ID, Name: "Groceries"})
}

func (suite *TestSuiteStandard) TestCategoryListFilterGroup() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	other := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Fixed costs"})

	suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Dining out"})
	suite.createTestCategory(v1.CategoryEditable{GroupID: other.Data.ID, Name: "Rent"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories?group=%s", group.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Dining out", response.Data[0].Name)
	suite.Assert().Equal("Groceries", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.Data.ID), map[string]any{
		"targetAmount": 500,
		"targetType":   "savings_goal",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoryUpdateGroupMissing() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.Data.ID), map[string]any{
		"groupId": uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

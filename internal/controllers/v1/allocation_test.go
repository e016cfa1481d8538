package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketwise/backend/internal/controllers/v1"
	"github.com/pocketwise/backend/internal/types"
	"github.com/pocketwise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAllocationCreate() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	allocation := suite.createTestAllocation(v1.AllocationEditable{
		CategoryID: category.Data.ID,
		Month:      types.NewMonth(2026, 8),
		Amount:     decimal.NewFromInt(400),
	})

	suite.Assert().True(allocation.Data.Amount.Equal(decimal.NewFromInt(400)), "amount is %s", allocation.Data.Amount)
	suite.Assert().Equal("2026-08", allocation.Data.Month.String())
}

func (suite *TestSuiteStandard) TestAllocationCreateDuplicateMonth() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	editable := v1.AllocationEditable{
		CategoryID: category.Data.ID,
		Month:      types.NewMonth(2026, 8),
		Amount:     decimal.NewFromInt(400),
	}
	suite.createTestAllocation(editable)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationCreateCategoryMissing() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations", v1.AllocationEditable{
		CategoryID: uuid.New(),
		Month:      types.NewMonth(2026, 8),
		Amount:     decimal.NewFromInt(400),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAllocationCreateMonthMissing() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations", v1.AllocationEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromInt(400),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationListFilterMonth() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	other := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Dining out"})

	suite.createTestAllocation(v1.AllocationEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(400)})
	suite.createTestAllocation(v1.AllocationEditable{CategoryID: other.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(100)})
	suite.createTestAllocation(v1.AllocationEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2026, 9), Amount: decimal.NewFromInt(450)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/allocations?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/allocations?category=%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestAllocationUpdate() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	allocation := suite.createTestAllocation(v1.AllocationEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(400)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/allocations/%s", allocation.Data.ID), map[string]any{
		"amount": 450,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(450)), "amount is %s", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestAllocationDelete() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	allocation := suite.createTestAllocation(v1.AllocationEditable{CategoryID: category.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(400)})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/allocations/%s", allocation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestAllocationMove() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	from := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	to := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Dining out"})

	suite.createTestAllocation(v1.AllocationEditable{CategoryID: from.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(400)})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations/move", v1.MoveEditable{
		FromCategoryID: from.Data.ID,
		ToCategoryID:   to.Data.ID,
		Month:          types.NewMonth(2026, 8),
		Amount:         decimal.NewFromInt(50),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// The source loses the amount, the destination's allocation is
	// created on the fly
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(350)), "amount is %s", response.Data[0].Amount)
	suite.Assert().True(response.Data[1].Amount.Equal(decimal.NewFromInt(50)), "amount is %s", response.Data[1].Amount)

	// The sum of all allocations for the month is unchanged
	month := suite.getMonth("2026-08")
	suite.Assert().True(month.Allocated.Equal(decimal.NewFromInt(400)), "allocated is %s", month.Allocated)
}

func (suite *TestSuiteStandard) TestAllocationMoveErrors() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	other := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Dining out"})

	tests := []struct {
		name   string
		move   v1.MoveEditable
		status int
	}{
		{
			"same category",
			v1.MoveEditable{FromCategoryID: category.Data.ID, ToCategoryID: category.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(50)},
			http.StatusBadRequest,
		},
		{
			"zero amount",
			v1.MoveEditable{FromCategoryID: category.Data.ID, ToCategoryID: other.Data.ID, Month: types.NewMonth(2026, 8)},
			http.StatusBadRequest,
		},
		{
			"negative amount",
			v1.MoveEditable{FromCategoryID: category.Data.ID, ToCategoryID: other.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(-50)},
			http.StatusBadRequest,
		},
		{
			"missing month",
			v1.MoveEditable{FromCategoryID: category.Data.ID, ToCategoryID: other.Data.ID, Amount: decimal.NewFromInt(50)},
			http.StatusBadRequest,
		},
		{
			"unknown category",
			v1.MoveEditable{FromCategoryID: uuid.New(), ToCategoryID: other.Data.ID, Month: types.NewMonth(2026, 8), Amount: decimal.NewFromInt(50)},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/allocations/move", tt.move)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pocketwise/backend/internal/controllers/v1"
	"github.com/pocketwise/backend/internal/types"
	"github.com/pocketwise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRolloverMonth() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	groceries := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})
	dining := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Dining out"})

	august := types.NewMonth(2026, 8)

	suite.createTestAllocation(v1.AllocationEditable{CategoryID: groceries.Data.ID, Month: august, Amount: decimal.NewFromInt(300)})
	suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-120),
		CategoryID: &groceries.Data.ID,
	})

	suite.createTestAllocation(v1.AllocationEditable{CategoryID: dining.Data.ID, Month: august, Amount: decimal.NewFromInt(100)})
	suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-150),
		CategoryID: &dining.Data.ID,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/rollover?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RolloverListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	amounts := make(map[string]decimal.Decimal)
	for _, rollover := range response.Data {
		suite.Assert().Equal("2026-08", rollover.FromMonth.String())
		suite.Assert().Equal("2026-09", rollover.ToMonth.String())
		amounts[rollover.CategoryID.String()] = rollover.Amount
	}

	suite.Assert().True(amounts[groceries.Data.ID.String()].Equal(decimal.NewFromInt(180)))
	suite.Assert().True(amounts[dining.Data.ID.String()].Equal(decimal.NewFromInt(-50)))

	// September starts from the persisted carry-forwards: the groceries
	// surplus is available again, the dining overspend reduces what is
	// ready to assign
	september := suite.getMonth("2026-09")
	suite.Assert().True(september.ReadyToAssign.Equal(decimal.NewFromInt(-50)), "ready to assign is %s", september.ReadyToAssign)

	for _, category := range september.Groups[0].Categories {
		switch category.ID {
		case groceries.Data.ID:
			suite.Assert().True(category.CarryForward.Equal(decimal.NewFromInt(180)), "carry forward is %s", category.CarryForward)
			suite.Assert().True(category.Available.Equal(decimal.NewFromInt(180)), "available is %s", category.Available)
		case dining.Data.ID:
			suite.Assert().True(category.CarryForward.Equal(decimal.NewFromInt(-50)), "carry forward is %s", category.CarryForward)
		}
	}
}

func (suite *TestSuiteStandard) TestRolloverMonthIdempotent() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	groceries := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	august := types.NewMonth(2026, 8)
	suite.createTestAllocation(v1.AllocationEditable{CategoryID: groceries.Data.ID, Month: august, Amount: decimal.NewFromInt(300)})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/rollover?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// A late transaction arrives, the month is closed again
	suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-100),
		CategoryID: &groceries.Data.ID,
	})

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/months/rollover?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RolloverListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The record is refreshed, not duplicated
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(200)), "amount is %s", response.Data[0].Amount)
}

func (suite *TestSuiteStandard) TestRolloverDecemberWrapsToJanuary() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	groceries := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	suite.createTestAllocation(v1.AllocationEditable{
		CategoryID: groceries.Data.ID,
		Month:      types.NewMonth(2026, 12),
		Amount:     decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/rollover?month=2026-12", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RolloverListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("2027-01", response.Data[0].ToMonth.String())

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/rollovers?month=2027-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestRolloversMonthRequired() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/rollovers", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/months/rollover", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRolloversEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/rollovers?month=2026-09", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RolloverListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pocketwise/backend/internal/controllers/v1"
	"github.com/pocketwise/backend/internal/types"
	"github.com/pocketwise/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthQueryParameter() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/months?month=August", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/months?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestMonthEmpty() {
	month := suite.getMonth("2026-08")

	assert := suite.Assert()
	assert.True(month.Income.IsZero())
	assert.True(month.ReadyToAssign.IsZero())
	assert.Empty(month.Groups)
}

func (suite *TestSuiteStandard) TestMonth() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	groceries := suite.createTestCategory(v1.CategoryEditable{
		GroupID:      group.Data.ID,
		Name:         "Groceries",
		TargetAmount: decimal.NewFromInt(400),
		TargetType:   "monthly",
	})
	dining := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Dining out"})

	august := types.NewMonth(2026, 8)

	suite.createTestTransaction(v1.TransactionEditable{
		Date:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(5000),
		Note:   "Salary",
	})
	suite.createTestAllocation(v1.AllocationEditable{CategoryID: groceries.Data.ID, Month: august, Amount: decimal.NewFromInt(300)})
	suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-120.50),
		CategoryID: &groceries.Data.ID,
	})

	month := suite.getMonth("2026-08")

	assert := suite.Assert()
	require := suite.Require()

	assert.True(month.Income.Equal(decimal.NewFromInt(5000)), "income is %s", month.Income)
	assert.True(month.Allocated.Equal(decimal.NewFromInt(300)), "allocated is %s", month.Allocated)
	assert.True(month.Activity.Equal(decimal.NewFromFloat(-120.50)), "activity is %s", month.Activity)
	assert.True(month.ReadyToAssign.Equal(decimal.NewFromInt(4700)), "ready to assign is %s", month.ReadyToAssign)
	assert.True(month.Overspent.IsZero())

	require.Len(month.Groups, 1)
	require.Len(month.Groups[0].Categories, 2)

	// Categories are ordered by name
	assert.Equal(dining.Data.ID, month.Groups[0].Categories[0].ID)

	groceriesMonth := month.Groups[0].Categories[1]
	assert.True(groceriesMonth.Available.Equal(decimal.NewFromFloat(179.50)), "available is %s", groceriesMonth.Available)
	require.NotNil(groceriesMonth.TargetProgress)
	assert.Equal(75, *groceriesMonth.TargetProgress)

	// Categories without a target have no progress
	assert.Nil(month.Groups[0].Categories[0].TargetProgress)
}

func (suite *TestSuiteStandard) TestMonthTransferNotIncome() {
	suite.createTestTransaction(v1.TransactionEditable{
		Date:     time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(100),
		Transfer: true,
	})

	month := suite.getMonth("2026-08")
	suite.Assert().True(month.Income.IsZero(), "income is %s", month.Income)
}

func (suite *TestSuiteStandard) TestMonthOverAssigned() {
	group := suite.createTestCategoryGroup(v1.CategoryGroupEditable{Name: "Quality of life"})
	category := suite.createTestCategory(v1.CategoryEditable{GroupID: group.Data.ID, Name: "Groceries"})

	suite.createTestAllocation(v1.AllocationEditable{
		CategoryID: category.Data.ID,
		Month:      types.NewMonth(2026, 8),
		Amount:     decimal.NewFromInt(300),
	})

	month := suite.getMonth("2026-08")
	suite.Assert().True(month.ReadyToAssign.Equal(decimal.NewFromInt(-300)), "ready to assign is %s", month.ReadyToAssign)
}

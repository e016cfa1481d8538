package models_test

import (
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationUniquePerCategoryAndMonth() {
	group := suite.createTestCategoryGroup(models.CategoryGroup{Name: "Everyday"})
	category := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})

	_ = suite.createTestAllocation(models.Allocation{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 8),
		Amount:     30000,
	})

	err := models.DB.Create(&models.Allocation{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 8),
		Amount:     10000,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAllocationMonthNotUnique)

	// Another month for the same category is fine
	err = models.DB.Create(&models.Allocation{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 9),
		Amount:     10000,
	}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestAllocationMonthRequired() {
	group := suite.createTestCategoryGroup(models.CategoryGroup{Name: "Everyday"})
	category := suite.createTestCategory(models.Category{GroupID: group.ID, Name: "Groceries"})

	err := models.DB.Create(&models.Allocation{
		CategoryID: category.ID,
		Amount:     10000,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAllocationMonthMissing)
}

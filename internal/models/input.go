package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/budget"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
	"gorm.io/gorm"
)

// BudgetInput assembles the calculation input for a month from the
// database.
//
// Carry-forwards and last month's overspend come from the persisted
// rollover records carrying into the month. A record's amount is the
// category's closing available balance, so the previous month's
// overspend is the sum of the negative record amounts. The implicit
// carry-forward projection (MonthState.CarryForwards) is deliberately
// not consulted here: mixing both mechanisms would double-count carried
// balances.
func BudgetInput(db *gorm.DB, month types.Month) (budget.Input, error) {
	input := budget.Input{
		Month:         month,
		Allocations:   make(money.Amounts),
		Activity:      make(money.Amounts),
		CarryForwards: make(money.Amounts),
	}

	var groups []CategoryGroup
	err := db.Order("name ASC").Find(&groups).Error
	if err != nil {
		return budget.Input{}, err
	}

	for _, group := range groups {
		categories, err := group.Categories(db)
		if err != nil {
			return budget.Input{}, err
		}

		budgetGroup := budget.Group{
			ID:         group.ID,
			Name:       group.Name,
			Categories: make([]budget.Category, 0, len(categories)),
		}

		for _, category := range categories {
			budgetGroup.Categories = append(budgetGroup.Categories, category.Snapshot())
		}

		input.Groups = append(input.Groups, budgetGroup)
	}

	var allocations []Allocation
	err = db.Where(&Allocation{Month: month}).Find(&allocations).Error
	if err != nil {
		return budget.Input{}, err
	}

	for _, allocation := range allocations {
		input.Allocations[allocation.CategoryID] = allocation.Amount
	}

	input.Activity, err = activity(db, month)
	if err != nil {
		return budget.Input{}, err
	}

	input.TotalIncome, err = Income(db, month)
	if err != nil {
		return budget.Input{}, err
	}

	records, err := RolloversInto(db, month)
	if err != nil {
		return budget.Input{}, err
	}

	for _, record := range records {
		input.CarryForwards[record.CategoryID] = record.Amount
		if record.Amount < 0 {
			input.OverspentLastMonth += -record.Amount
		}
	}

	return input, nil
}

// activity sums the signed transaction amounts per category for the month.
func activity(db *gorm.DB, month types.Month) (money.Amounts, error) {
	start, end := monthWindow(month)

	var sums []struct {
		CategoryID uuid.UUID
		Sum        int64
	}

	err := db.
		Model(&Transaction{}).
		Select("category_id, SUM(amount) AS sum").
		Where("category_id IS NOT NULL").
		Where("date >= ? AND date < ?", start, end).
		Group("category_id").
		Find(&sums).
		Error
	if err != nil {
		return nil, err
	}

	amounts := make(money.Amounts, len(sums))
	for _, sum := range sums {
		amounts[sum.CategoryID] = money.Cents(sum.Sum)
	}

	return amounts, nil
}

// Income returns the month's income: the sum of all positive,
// non-transfer transaction amounts.
func Income(db *gorm.DB, month types.Month) (money.Cents, error) {
	start, end := monthWindow(month)

	var sum sql.NullInt64
	err := db.
		Model(&Transaction{}).
		Select("SUM(amount)").
		Where("amount > 0").
		Where("transfer = ?", false).
		Where("date >= ? AND date < ?", start, end).
		Row().
		Scan(&sum)
	if err != nil {
		return 0, err
	}

	return money.Cents(sum.Int64), nil
}

// monthWindow returns the half-open UTC time range [start, end) of a month.
func monthWindow(month types.Month) (time.Time, time.Time) {
	start := time.Time(month)
	return start, time.Time(month.Next())
}

package models

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/budget"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
	"gorm.io/gorm"
)

// RolloverRecord is the persisted form of a budget.Rollover: the durable
// statement that a category carries an amount from one month into the
// next. Records are the canonical carry-forward source for the API; see
// BudgetInput.
type RolloverRecord struct {
	DefaultModel
	CategoryID uuid.UUID   `json:"categoryId" gorm:"uniqueIndex:rollover_category_from_month" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	Category   Category    `json:"-"`
	FromMonth  types.Month `json:"fromMonth" gorm:"uniqueIndex:rollover_category_from_month" example:"2026-08-01T00:00:00Z"`
	ToMonth    types.Month `json:"toMonth" gorm:"index" example:"2026-09-01T00:00:00Z"`
	Amount     money.Cents `json:"-"`
}

func (r *RolloverRecord) BeforeCreate(tx *gorm.DB) error {
	err := r.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return tx.First(&Category{}, "id = ?", r.CategoryID).Error
}

func (r *RolloverRecord) BeforeSave(_ *gorm.DB) error {
	// ToMonth is always the direct successor of FromMonth
	r.ToMonth = r.FromMonth.Next()
	return nil
}

// SaveRollovers upserts the rollover records for a closed month.
//
// Closing a month twice refreshes the existing records instead of
// duplicating them, so re-closing after late transactions is safe. All
// records are written in one transaction.
func SaveRollovers(db *gorm.DB, rollovers []budget.Rollover) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, rollover := range rollovers {
			err := tx.
				Where(RolloverRecord{
					CategoryID: rollover.CategoryID,
					FromMonth:  rollover.FromMonth,
				}).
				// Assign with a map so that a zero amount is written, too
				Assign(map[string]interface{}{
					"to_month": rollover.ToMonth,
					"amount":   rollover.Amount,
				}).
				FirstOrCreate(&RolloverRecord{}).
				Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// RolloversInto returns all rollover records carrying money into the month.
func RolloversInto(db *gorm.DB, month types.Month) ([]RolloverRecord, error) {
	var records []RolloverRecord

	err := db.
		Where(&RolloverRecord{ToMonth: month}).
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

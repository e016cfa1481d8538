package models

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
	"gorm.io/gorm"
)

// Allocation is the money assigned to a category for a specific month.
// There is at most one allocation per category and month.
type Allocation struct {
	DefaultModel
	CategoryID uuid.UUID   `json:"categoryId" gorm:"uniqueIndex:allocation_category_month" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	Category   Category    `json:"-"`
	Month      types.Month `json:"month" gorm:"uniqueIndex:allocation_category_month" example:"2026-08-01T00:00:00Z"`
	Amount     money.Cents `json:"-"`
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	err := a.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if a.Month.IsZero() {
		return ErrAllocationMonthMissing
	}

	return tx.First(&Category{}, "id = ?", a.CategoryID).Error
}

func (a *Allocation) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Month") {
		toSave := tx.Statement.Dest.(Allocation)
		if toSave.Month.IsZero() {
			return ErrAllocationMonthMissing
		}
	}

	return nil
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/money"
	"gorm.io/gorm"
)

// Transaction is a single booking. The amount is signed: outflows are
// negative, inflows positive. Transfers between own accounts never count
// as income.
type Transaction struct {
	DefaultModel
	Date       time.Time   `json:"date" example:"2026-08-12T00:00:00Z"`
	Amount     money.Cents `json:"-"`
	Note       string      `json:"note" example:"Weekly groceries"`
	CategoryID *uuid.UUID  `json:"categoryId" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	Category   *Category   `json:"-"`
	Transfer   bool        `json:"transfer" example:"false"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	err := t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if t.CategoryID != nil {
		return tx.First(&Category{}, "id = ?", t.CategoryID).Error
	}

	return nil
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}

	// Normalize to UTC so that month windows are unambiguous
	t.Date = t.Date.In(time.UTC)

	return nil
}

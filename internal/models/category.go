package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/budget"
	"github.com/pocketwise/backend/internal/money"
	"gorm.io/gorm"
)

// Category is a budget envelope: money is allocated into it and spent
// from it. The target fields are optional and only influence the
// computed target progress, never the month arithmetic.
type Category struct {
	DefaultModel
	GroupID      uuid.UUID         `json:"groupId" gorm:"uniqueIndex:category_group_name" example:"d1b9c51a-1b3f-4f2a-a0c7-9a6d21791b7e"`
	Group        CategoryGroup     `json:"-"`
	Name         string            `json:"name" gorm:"uniqueIndex:category_group_name" example:"Groceries"`
	Emoji        string            `json:"emoji" example:"🛒"`
	TargetAmount money.Cents       `json:"-"`
	TargetType   budget.TargetType `json:"targetType" example:"monthly"`
	Archived     bool              `json:"archived" example:"false"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	err := c.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	// The group it belongs to must exist
	return tx.First(&CategoryGroup{}, "id = ?", c.GroupID).Error
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("GroupID") {
		toSave := tx.Statement.Dest.(Category)
		return tx.First(&CategoryGroup{}, "id = ?", toSave.GroupID).Error
	}

	return nil
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Emoji = strings.TrimSpace(c.Emoji)

	if !c.TargetType.Valid() {
		return ErrTargetTypeInvalid
	}

	if c.TargetAmount < 0 {
		return ErrTargetAmountNegative
	}

	return nil
}

// Snapshot returns the category as input for the budget calculation.
func (c Category) Snapshot() budget.Category {
	return budget.Category{
		ID:           c.ID,
		Name:         c.Name,
		Emoji:        c.Emoji,
		TargetAmount: c.TargetAmount,
		TargetType:   c.TargetType,
	}
}

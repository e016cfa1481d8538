package models

import (
	"strings"

	"gorm.io/gorm"
)

// CategoryGroup groups categories for display and summing. It is the
// top level of the budget hierarchy.
type CategoryGroup struct {
	DefaultModel
	Name     string `json:"name" gorm:"uniqueIndex" example:"Fixed costs"`
	Note     string `json:"note" example:"Rent, insurance, subscriptions"`
	Archived bool   `json:"archived" example:"false"`
}

func (g *CategoryGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

// Categories returns the group's categories, ordered by name.
func (g CategoryGroup) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.
		Where(&Category{GroupID: g.ID}).
		Order("name ASC").
		Find(&categories).
		Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

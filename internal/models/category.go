package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum CategoryType
type CategoryType string

const (
	CategoryTypeFixed    CategoryType = "fixed"
	CategoryTypeVariable CategoryType = "variable"
)

// Category represents a spending category with a monthly budget.
type Category struct {
	DefaultModel
	CategoryCreate
}

type CategoryCreate struct {
	Name   string          `json:"name" example:"Alquiler" default:""`                       // Name of the category
	Type   CategoryType    `json:"type" example:"fixed" default:"variable"`                  // Whether the category is a fixed obligation or variable spending
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"850.00"`       // Budgeted amount per month
	Icon   string          `json:"icon" example:"🏠" default:""`                              // Icon shown for the category
	Color  string          `json:"color" example:"#4f46e5" default:""`                       // Display color for the category
	Order  int             `json:"order" gorm:"column:sort_order" example:"1" default:"0"`   // Position of the category in lists
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Type == "" {
		c.Type = CategoryTypeVariable
	}

	if c.Type != CategoryTypeFixed && c.Type != CategoryTypeVariable {
		return ErrCategoryTypeInvalid
	}

	return nil
}

func (c *Category) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(c.Amount) {
		return ErrCategoryAmountNotPositive
	}

	return nil
}

// DeleteCascading deletes the category together with its payments and
// expenses. The deletions happen one by one, a failure in a later step
// does not roll back the earlier ones.
func (c Category) DeleteCascading(db *gorm.DB) error {
	err := db.Delete(&c).Error
	if err != nil {
		return err
	}

	err = db.Where("category_id = ?", c.ID).Delete(&Payment{}).Error
	if err != nil {
		return err
	}

	return db.Where("category_id = ?", c.ID).Delete(&Expense{}).Error
}

package models

import (
	"strings"

	"github.com/control-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExtraExpense is a one-off expense outside of all categories. It counts
// towards the total spent of its month, but not towards any category.
type ExtraExpense struct {
	DefaultModel
	ExtraExpenseCreate
}

type ExtraExpenseCreate struct {
	Description string          `json:"description" example:"Taller del coche" default:"Gasto extra"` // What the money was spent on
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"320.00"`            // Amount spent
	Date        types.Date      `json:"date" example:"2026-08-19"`                                    // Day the expense was made
}

func (e *ExtraExpense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		e.Description = "Gasto extra"
	}

	if e.Date.IsZero() {
		return ErrExpenseDateNotSet
	}

	return nil
}

func (e *ExtraExpense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

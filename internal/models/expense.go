package models

import (
	"strings"

	"github.com/control-finanzas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single purchase booked against a variable category.
type Expense struct {
	DefaultModel
	ExpenseCreate
}

type ExpenseCreate struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"8a9d6157-6d52-4a33-b7ee-49b95d119bcf"`            // ID of the variable category the expense belongs to
	Description string          `json:"description" example:"Supermercado" default:"Sin descripción"`        // What the money was spent on
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"23.50"`                    // Amount spent
	Date        types.Date      `json:"date" example:"2026-08-14"`                                           // Day the expense was made
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		e.Description = "Sin descripción"
	}

	if e.Date.IsZero() {
		return ErrExpenseDateNotSet
	}

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	var category Category
	err := tx.First(&category, e.CategoryID).Error
	if err != nil {
		return err
	}

	if category.Type != CategoryTypeVariable {
		return ErrExpenseCategoryNotVariable
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

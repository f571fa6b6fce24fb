package models

import (
	"strings"

	"github.com/control-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a one-off income on top of the monthly income, for example a
// bonus or a refund.
type Income struct {
	DefaultModel
	IncomeCreate
}

type IncomeCreate struct {
	Description string          `json:"description" example:"Devolución hacienda" default:"Ingreso extra"` // Where the money came from
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"150.00"`                 // Amount received
	Date        types.Date      `json:"date" example:"2026-08-02"`                                         // Day the income was received
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	if i.Description == "" {
		i.Description = "Ingreso extra"
	}

	if i.Date.IsZero() {
		return ErrIncomeDateNotSet
	}

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(i.Amount) {
		return ErrIncomeAmountNotPositive
	}

	return nil
}

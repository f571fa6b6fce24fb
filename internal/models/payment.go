package models

import (
	"errors"

	"github.com/control-finanzas/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records whether a fixed category has been paid in a specific month.
type Payment struct {
	DefaultModel
	PaymentCreate
	PaidDate *types.Date `json:"paidDate" example:"2026-08-05"` // Day the payment was marked as paid
}

type PaymentCreate struct {
	CategoryID uuid.UUID   `json:"categoryId" gorm:"uniqueIndex:payment_category_month" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the fixed category the payment belongs to
	Month      types.Month `json:"month" gorm:"uniqueIndex:payment_category_month" example:"2026-08-01T00:00:00.000000Z"`               // The month the payment is for. This is always set to 00:00 UTC on the first of the month.
	IsPaid     bool        `json:"isPaid" example:"true" default:"false"`                                                               // Whether the category is paid for the month
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	if p.Month.IsZero() {
		return ErrPaymentMonthNotSet
	}

	return nil
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	var category Category
	err := tx.First(&category, p.CategoryID).Error
	if err != nil {
		return err
	}

	if category.Type != CategoryTypeFixed {
		return ErrPaymentCategoryNotFixed
	}

	return nil
}

// TogglePayment sets the paid state for a category and month, creating the
// payment on first use. The paid date is set to today when marking as paid
// and cleared when marking as unpaid.
func TogglePayment(db *gorm.DB, categoryID uuid.UUID, month types.Month, paid bool, today types.Date) (Payment, error) {
	var category Category
	err := db.First(&category, categoryID).Error
	if err != nil {
		return Payment{}, err
	}

	if category.Type != CategoryTypeFixed {
		return Payment{}, ErrPaymentCategoryNotFixed
	}

	var paidDate *types.Date
	if paid {
		paidDate = &today
	}

	var payment Payment
	err = db.Where(&Payment{PaymentCreate: PaymentCreate{CategoryID: categoryID, Month: month}}).Limit(1).Find(&payment).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Payment{}, err
	}

	if payment.ID == uuid.Nil {
		payment = Payment{
			PaymentCreate: PaymentCreate{
				CategoryID: categoryID,
				Month:      month,
				IsPaid:     paid,
			},
			PaidDate: paidDate,
		}

		err = db.Create(&payment).Error
		return payment, err
	}

	payment.IsPaid = paid
	payment.PaidDate = paidDate
	err = db.Model(&payment).Select("IsPaid", "PaidDate").Updates(Payment{PaymentCreate: PaymentCreate{IsPaid: paid}, PaidDate: paidDate}).Error

	return payment, err
}

package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Settings is a singleton row holding the per-instance configuration.
type Settings struct {
	ID uint `json:"-" gorm:"primaryKey"`
	Timestamps
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,8)" example:"2000.00"` // Regular income per month
}

func (s *Settings) AfterSave(_ *gorm.DB) error {
	if s.MonthlyIncome.IsNegative() {
		return ErrMonthlyIncomeNegative
	}

	return nil
}

// LoadSettings returns the settings row. When none exists yet, the zero
// value is returned and nothing is written.
func LoadSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.Limit(1).Find(&settings).Error

	return settings, err
}

// SetMonthlyIncome updates the monthly income, creating the settings row
// on first use.
func SetMonthlyIncome(db *gorm.DB, income decimal.Decimal) (Settings, error) {
	settings := Settings{ID: 1, MonthlyIncome: income}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_income", "updated_at"}),
	}).Create(&settings).Error

	return settings, err
}

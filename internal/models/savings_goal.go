package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is a long-term saving target that is filled up with
// contributions over time. It is not scoped to a month.
type SavingsGoal struct {
	DefaultModel
	SavingsGoalCreate
}

type SavingsGoalCreate struct {
	Name    string          `json:"name" example:"Vacaciones" default:""`                        // Name of the goal
	Target  decimal.Decimal `json:"target" gorm:"type:DECIMAL(20,8)" example:"2000.00"`          // Amount to save up to
	Current decimal.Decimal `json:"current" gorm:"type:DECIMAL(20,8)" example:"450.00"`          // Amount saved so far
	Color   string          `json:"color" example:"#059669" default:""`                          // Display color for the goal
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	return nil
}

func (g *SavingsGoal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.Target) {
		return ErrGoalTargetNotPositive
	}

	if g.Current.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

// Contribute adds an amount to the saved amount of the goal. The goal is
// read again right before the update, concurrent contributions do not get
// lost as long as they do not overlap.
func (g *SavingsGoal) Contribute(db *gorm.DB, amount decimal.Decimal) error {
	if !decimal.Decimal.IsPositive(amount) {
		return ErrContributionNotPositive
	}

	var goal SavingsGoal
	err := db.First(&goal, g.ID).Error
	if err != nil {
		return err
	}

	goal.Current = goal.Current.Add(amount)
	err = db.Model(&goal).Select("Current").Updates(SavingsGoal{SavingsGoalCreate: SavingsGoalCreate{Current: goal.Current}}).Error
	if err != nil {
		return err
	}

	*g = goal
	return nil
}

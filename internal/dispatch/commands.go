package dispatch

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChangeMonth selects another month. It does not touch the database, the
// cached snapshot of the previous month stays valid.
type ChangeMonth struct {
	Month types.Month
}

func (c *ChangeMonth) Validate() error {
	if c.Month.IsZero() {
		return models.ErrMonthNotSet
	}

	return nil
}

func (c *ChangeMonth) apply(_ *gorm.DB) error {
	return nil
}

// ToggleCategoryPaid marks a fixed category as paid or unpaid for a month.
// The resulting payment is stored in Payment.
type ToggleCategoryPaid struct {
	CategoryID uuid.UUID
	Month      types.Month
	Paid       bool
	Today      types.Date

	Payment models.Payment
}

func (c *ToggleCategoryPaid) Validate() error {
	if c.Month.IsZero() {
		return models.ErrPaymentMonthNotSet
	}

	return nil
}

func (c *ToggleCategoryPaid) apply(db *gorm.DB) error {
	payment, err := models.TogglePayment(db, c.CategoryID, c.Month, c.Paid, c.Today)
	if err != nil {
		return err
	}

	c.Payment = payment
	return nil
}

// SubmitCategory creates the category or, when Fields is set, updates the
// named fields of an existing one.
type SubmitCategory struct {
	Category *models.Category
	Fields   []any
}

func (c *SubmitCategory) Validate() error {
	if c.Category.ID == uuid.Nil && !decimal.Decimal.IsPositive(c.Category.Amount) {
		return models.ErrCategoryAmountNotPositive
	}

	return nil
}

func (c *SubmitCategory) apply(db *gorm.DB) error {
	return submit(db, c.Category, c.Category.ID == uuid.Nil, c.Fields)
}

// SubmitExpense creates the expense or, when Fields is set, updates the
// named fields of an existing one.
type SubmitExpense struct {
	Expense *models.Expense
	Fields  []any
}

func (c *SubmitExpense) Validate() error {
	if c.Expense.ID == uuid.Nil && !decimal.Decimal.IsPositive(c.Expense.Amount) {
		return models.ErrExpenseAmountNotPositive
	}

	return nil
}

func (c *SubmitExpense) apply(db *gorm.DB) error {
	return submit(db, c.Expense, c.Expense.ID == uuid.Nil, c.Fields)
}

// SubmitIncome creates the income or, when Fields is set, updates the
// named fields of an existing one.
type SubmitIncome struct {
	Income *models.Income
	Fields []any
}

func (c *SubmitIncome) Validate() error {
	if c.Income.ID == uuid.Nil && !decimal.Decimal.IsPositive(c.Income.Amount) {
		return models.ErrIncomeAmountNotPositive
	}

	return nil
}

func (c *SubmitIncome) apply(db *gorm.DB) error {
	return submit(db, c.Income, c.Income.ID == uuid.Nil, c.Fields)
}

// SubmitExtraExpense creates the extra expense or, when Fields is set,
// updates the named fields of an existing one.
type SubmitExtraExpense struct {
	ExtraExpense *models.ExtraExpense
	Fields       []any
}

func (c *SubmitExtraExpense) Validate() error {
	if c.ExtraExpense.ID == uuid.Nil && !decimal.Decimal.IsPositive(c.ExtraExpense.Amount) {
		return models.ErrExpenseAmountNotPositive
	}

	return nil
}

func (c *SubmitExtraExpense) apply(db *gorm.DB) error {
	return submit(db, c.ExtraExpense, c.ExtraExpense.ID == uuid.Nil, c.Fields)
}

// SubmitSavingsGoal creates the savings goal or, when Fields is set,
// updates the named fields of an existing one.
type SubmitSavingsGoal struct {
	Goal   *models.SavingsGoal
	Fields []any
}

func (c *SubmitSavingsGoal) Validate() error {
	if c.Goal.ID == uuid.Nil && !decimal.Decimal.IsPositive(c.Goal.Target) {
		return models.ErrGoalTargetNotPositive
	}

	return nil
}

func (c *SubmitSavingsGoal) apply(db *gorm.DB) error {
	return submit(db, c.Goal, c.Goal.ID == uuid.Nil, c.Fields)
}

// Contribute adds an amount to a savings goal. The updated goal is stored
// in Goal.
type Contribute struct {
	GoalID uuid.UUID
	Amount decimal.Decimal

	Goal models.SavingsGoal
}

func (c *Contribute) Validate() error {
	if !decimal.Decimal.IsPositive(c.Amount) {
		return models.ErrContributionNotPositive
	}

	return nil
}

func (c *Contribute) apply(db *gorm.DB) error {
	c.Goal = models.SavingsGoal{DefaultModel: models.DefaultModel{ID: c.GoalID}}
	return c.Goal.Contribute(db, c.Amount)
}

// SetMonthlyIncome updates the regular monthly income. The resulting
// settings are stored in Settings.
type SetMonthlyIncome struct {
	Income decimal.Decimal

	Settings models.Settings
}

func (c *SetMonthlyIncome) Validate() error {
	if c.Income.IsNegative() {
		return models.ErrMonthlyIncomeNegative
	}

	return nil
}

func (c *SetMonthlyIncome) apply(db *gorm.DB) error {
	settings, err := models.SetMonthlyIncome(db, c.Income)
	if err != nil {
		return err
	}

	c.Settings = settings
	return nil
}

// DeleteCategory deletes a category together with its payments and expenses.
type DeleteCategory struct {
	Category models.Category
}

func (c *DeleteCategory) Validate() error { return nil }

func (c *DeleteCategory) apply(db *gorm.DB) error {
	return c.Category.DeleteCascading(db)
}

// DeleteResource deletes a single expense, income, extra expense or
// savings goal.
type DeleteResource struct {
	Resource any
}

func (c *DeleteResource) Validate() error { return nil }

func (c *DeleteResource) apply(db *gorm.DB) error {
	return db.Delete(c.Resource).Error
}

// submit creates the value or updates the named fields.
func submit(db *gorm.DB, value any, create bool, fields []any) error {
	if create {
		return db.Create(value).Error
	}

	return db.Model(value).Select("", fields...).Updates(value).Error
}

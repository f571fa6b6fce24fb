// Package report computes the read models served by the API. All functions
// are pure, they only work on a snapshot and never touch the database.
package report

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier classifies how much of a budget is used up.
//
// swagger:enum Tier
type Tier string

const (
	TierLow    Tier = "low"    // Less than 75 % used
	TierMedium Tier = "medium" // 75 % or more used
	TierHigh   Tier = "high"   // 100 % or more used
)

func tierFor(percent int64) Tier {
	if percent < 75 {
		return TierLow
	}

	if percent < 100 {
		return TierMedium
	}

	return TierHigh
}

// percent returns spent as a rounded percentage of budget. Budgets that are
// zero or negative always give 0 to avoid division by zero.
func percent(spent, budget decimal.Decimal) int64 {
	if !budget.IsPositive() {
		return 0
	}

	return spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CategoryCard is one category with its progress for the month.
type CategoryCard struct {
	models.Category
	Spent     decimal.Decimal `json:"spent" example:"123.45"`     // Amount spent in the month
	Remaining decimal.Decimal `json:"remaining" example:"176.55"` // Budget minus spent
	Percent   int64           `json:"percent" example:"41"`       // Share of the budget used, rounded
	Paid      bool            `json:"paid" example:"true"`        // Fixed: payment toggled on. Variable: at least one expense
	Tier      Tier            `json:"tier" example:"low"`         // Progress classification for rendering
}

// DashboardSummary is the aggregate view of one month.
type DashboardSummary struct {
	Month         types.Month     `json:"month" example:"2026-08-01T00:00:00.000000Z"` // The month the summary is for
	Name          string          `json:"name" example:"Agosto 2026"`                  // Display name of the month
	TotalBudget   decimal.Decimal `json:"totalBudget" example:"2150.00"`               // Monthly income plus one-off incomes
	TotalSpent    decimal.Decimal `json:"totalSpent" example:"874.50"`                 // Spending across all categories plus extra expenses
	Remaining     decimal.Decimal `json:"remaining" example:"1275.50"`                 // Budget minus spent
	Percent       int64           `json:"percent" example:"41"`                        // Share of the budget used, rounded
	PaidCount     int             `json:"paidCount" example:"3"`                       // Categories that are paid or have spending
	PendingCount  int             `json:"pendingCount" example:"2"`                    // Categories without payment or spending
	CategoryCount int             `json:"categoryCount" example:"5"`                   // Total number of categories
	Categories    []CategoryCard  `json:"categories"`                                  // Per-category progress, in display order
}

// Summarize computes the dashboard for the snapshot's month.
//
// The budget is the monthly income plus the month's one-off incomes,
// category budgets do not contribute to it. A fixed category counts as
// spent only once its payment is toggled on.
func Summarize(s *session.Snapshot) DashboardSummary {
	summary := DashboardSummary{
		Month:         s.Month,
		Name:          s.Month.DisplayName(),
		TotalBudget:   s.MonthlyIncome,
		CategoryCount: len(s.Categories),
		Categories:    []CategoryCard{},
	}

	for _, income := range s.Incomes {
		summary.TotalBudget = summary.TotalBudget.Add(income.Amount)
	}

	spentByCategory := sumByCategory(s.Expenses)

	for _, category := range s.Categories {
		card := CategoryCard{Category: category}

		if category.Type == models.CategoryTypeFixed {
			card.Paid = isPaid(s.Payments, category.ID)
			if card.Paid {
				card.Spent = category.Amount
				card.Percent = 100
			}
		} else {
			card.Spent = spentByCategory[category.ID]
			card.Paid = card.Spent.IsPositive()
			card.Percent = percent(card.Spent, category.Amount)
		}

		card.Remaining = category.Amount.Sub(card.Spent)
		card.Tier = tierFor(card.Percent)

		if card.Paid {
			summary.PaidCount++
		} else {
			summary.PendingCount++
		}

		summary.TotalSpent = summary.TotalSpent.Add(card.Spent)
		summary.Categories = append(summary.Categories, card)
	}

	for _, extra := range s.ExtraExpenses {
		summary.TotalSpent = summary.TotalSpent.Add(extra.Amount)
	}

	summary.Remaining = summary.TotalBudget.Sub(summary.TotalSpent)
	summary.Percent = percent(summary.TotalSpent, summary.TotalBudget)

	return summary
}

// Profile is the income and expense balance of one month.
type Profile struct {
	Month         types.Month     `json:"month" example:"2026-08-01T00:00:00.000000Z"` // The month the profile is for
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"2000.00"`             // Regular income per month
	ExtraIncome   decimal.Decimal `json:"extraIncome" example:"150.00"`                // Sum of the month's one-off incomes
	ExtraExpenses decimal.Decimal `json:"extraExpenses" example:"320.00"`              // Sum of the month's one-off expenses
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"2150.00"`               // Monthly income plus one-off incomes
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"874.50"`              // Paid fixed categories, variable spending and one-off expenses
	Balance       decimal.Decimal `json:"balance" example:"1275.50"`                   // Total income minus total expenses
}

// ProfileFor computes the income and expense balance for the snapshot's
// month. Fixed categories count towards the expenses only when their
// payment is toggled on.
func ProfileFor(s *session.Snapshot) Profile {
	profile := Profile{
		Month:         s.Month,
		MonthlyIncome: s.MonthlyIncome,
	}

	for _, income := range s.Incomes {
		profile.ExtraIncome = profile.ExtraIncome.Add(income.Amount)
	}
	profile.TotalIncome = profile.MonthlyIncome.Add(profile.ExtraIncome)

	spentByCategory := sumByCategory(s.Expenses)

	for _, category := range s.Categories {
		if category.Type == models.CategoryTypeFixed {
			if isPaid(s.Payments, category.ID) {
				profile.TotalExpenses = profile.TotalExpenses.Add(category.Amount)
			}
		} else {
			profile.TotalExpenses = profile.TotalExpenses.Add(spentByCategory[category.ID])
		}
	}

	for _, extra := range s.ExtraExpenses {
		profile.ExtraExpenses = profile.ExtraExpenses.Add(extra.Amount)
	}
	profile.TotalExpenses = profile.TotalExpenses.Add(profile.ExtraExpenses)

	profile.Balance = profile.TotalIncome.Sub(profile.TotalExpenses)

	return profile
}

// GoalCard is one savings goal with its progress.
type GoalCard struct {
	models.SavingsGoal
	Percent int64 `json:"percent" example:"23"` // Share of the target reached, capped at 100
}

// SavingsOverview lists all savings goals with the total saved across them.
type SavingsOverview struct {
	TotalSaved decimal.Decimal `json:"totalSaved" example:"1234.56"` // Sum of the saved amounts of all goals
	Goals      []GoalCard      `json:"goals"`                        // All goals, sorted by name
}

// Savings computes the savings overview. The progress of a goal is capped
// at 100 even when more than the target was saved.
func Savings(goals []models.SavingsGoal) SavingsOverview {
	overview := SavingsOverview{Goals: []GoalCard{}}

	for _, goal := range goals {
		target := goal.Target
		if target.IsZero() {
			target = decimal.NewFromInt(1)
		}

		p := percent(goal.Current, target)
		if p > 100 {
			p = 100
		}

		overview.TotalSaved = overview.TotalSaved.Add(goal.Current)
		overview.Goals = append(overview.Goals, GoalCard{SavingsGoal: goal, Percent: p})
	}

	return overview
}

func sumByCategory(expenses []models.Expense) map[uuid.UUID]decimal.Decimal {
	sums := make(map[uuid.UUID]decimal.Decimal, len(expenses))
	for _, expense := range expenses {
		sums[expense.CategoryID] = sums[expense.CategoryID].Add(expense.Amount)
	}

	return sums
}

func isPaid(payments []models.Payment, categoryID uuid.UUID) bool {
	for _, payment := range payments {
		if payment.CategoryID == categoryID {
			return payment.IsPaid
		}
	}

	return false
}

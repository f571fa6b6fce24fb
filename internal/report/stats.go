package report

import (
	"time"

	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// WeeklyStats is the variable spending of the week the reference day falls
// into, bucketed per day from Monday to Sunday.
type WeeklyStats struct {
	Start        types.Date         `json:"start" example:"2026-08-24"`     // Monday of the week
	End          types.Date         `json:"end" example:"2026-08-30"`       // Sunday of the week
	Days         [7]decimal.Decimal `json:"days"`                           // Spending per day, Monday first
	Total        decimal.Decimal    `json:"total" example:"184.20"`         // Spending of the whole week
	AverageDaily decimal.Decimal    `json:"averageDaily" example:"36.84"`   // Total divided by the days elapsed so far
}

// Weekly computes the weekly spending statistics relative to the given day.
// Only expenses of variable categories count. The daily average divides by
// the number of days elapsed in the week, not by seven, so a week in
// progress is not diluted by days that have not happened yet.
func Weekly(s *session.Snapshot, today types.Date) WeeklyStats {
	weekday := today.Weekday()

	offset := 1 - int(weekday)
	if weekday == time.Sunday {
		offset = -6
	}

	stats := WeeklyStats{
		Start: today.AddDays(offset),
	}
	stats.End = stats.Start.AddDays(6)

	variable := variableCategoryIDs(s.Categories)

	for _, expense := range s.Expenses {
		if !slices.Contains(variable, expense.CategoryID) {
			continue
		}

		if expense.Date.Before(stats.Start) || expense.Date.After(stats.End) {
			continue
		}

		// Monday = 0, Sunday = 6
		index := (int(expense.Date.Weekday()) + 6) % 7
		stats.Days[index] = stats.Days[index].Add(expense.Amount)
	}

	for _, day := range stats.Days {
		stats.Total = stats.Total.Add(day)
	}

	daysElapsed := int(weekday)
	if weekday == time.Sunday {
		daysElapsed = 7
	}
	stats.AverageDaily = stats.Total.Div(decimal.NewFromInt(int64(daysElapsed)))

	return stats
}

// CategoryStat is the lifetime spending of one variable category.
type CategoryStat struct {
	models.Category
	Total          decimal.Decimal `json:"total" example:"1845.30"`         // Spending across all months
	MonthCount     int             `json:"monthCount" example:"5"`          // Number of months with at least one expense
	MonthlyAverage decimal.Decimal `json:"monthlyAverage" example:"369.06"` // Total divided by the months with expenses
}

// CategoryStatistics computes the lifetime spending per variable category
// across all expenses, largest total first. Categories without any
// spending are left out.
func CategoryStatistics(categories []models.Category, expenses []models.Expense) []CategoryStat {
	stats := []CategoryStat{}

	for _, category := range categories {
		if category.Type != models.CategoryTypeVariable {
			continue
		}

		stat := CategoryStat{Category: category}
		months := map[string]bool{}

		for _, expense := range expenses {
			if expense.CategoryID != category.ID {
				continue
			}

			stat.Total = stat.Total.Add(expense.Amount)
			months[expense.Date.Month().String()] = true
		}

		if !stat.Total.IsPositive() {
			continue
		}

		stat.MonthCount = len(months)
		stat.MonthlyAverage = stat.Total.Div(decimal.NewFromInt(int64(stat.MonthCount)))

		stats = append(stats, stat)
	}

	slices.SortStableFunc(stats, func(a, b CategoryStat) int {
		return b.Total.Cmp(a.Total)
	})

	return stats
}

func variableCategoryIDs(categories []models.Category) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		if category.Type == models.CategoryTypeVariable {
			ids = append(ids, category.ID)
		}
	}

	return ids
}

// Package session loads and caches the data a dashboard month is built
// from. All collections for a month are fetched in parallel, a failure in
// one collection leaves that collection empty instead of failing the
// whole load.
package session

import (
	"context"
	"time"

	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Snapshot holds everything needed to render one month.
type Snapshot struct {
	Month         types.Month
	MonthlyIncome decimal.Decimal
	Categories    []models.Category
	Payments      []models.Payment
	Expenses      []models.Expense
	Incomes       []models.Income
	ExtraExpenses []models.ExtraExpense
	Goals         []models.SavingsGoal
}

// Loader fetches snapshots from the database.
type Loader struct {
	db *gorm.DB
}

func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Load fetches all collections for the month in parallel.
func (l *Loader) Load(ctx context.Context, month types.Month) *Snapshot {
	s := &Snapshot{
		Month:         month,
		Categories:    []models.Category{},
		Payments:      []models.Payment{},
		Expenses:      []models.Expense{},
		Incomes:       []models.Income{},
		ExtraExpenses: []models.ExtraExpense{},
		Goals:         []models.SavingsGoal{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var categories []models.Category
		err := l.db.WithContext(ctx).Order("sort_order ASC").Find(&categories).Error
		if err != nil {
			log.Error().Err(err).Msg("could not load categories")
			return nil
		}

		s.Categories = categories
		return nil
	})

	g.Go(func() error {
		var payments []models.Payment
		err := l.db.WithContext(ctx).Where("month = ?", month).Find(&payments).Error
		if err != nil {
			log.Error().Err(err).Msg("could not load payments")
			return nil
		}

		s.Payments = payments
		return nil
	})

	g.Go(func() error {
		var expenses []models.Expense
		err := l.db.WithContext(ctx).Find(&expenses).Error
		if err != nil {
			log.Error().Err(err).Msg("could not load expenses")
			return nil
		}

		s.Expenses = filterMonth(expenses, month, func(e models.Expense) types.Date { return e.Date })
		return nil
	})

	g.Go(func() error {
		var incomes []models.Income
		err := l.db.WithContext(ctx).Find(&incomes).Error
		if err != nil {
			log.Error().Err(err).Msg("could not load incomes")
			return nil
		}

		s.Incomes = filterMonth(incomes, month, func(i models.Income) types.Date { return i.Date })
		return nil
	})

	g.Go(func() error {
		var extraExpenses []models.ExtraExpense
		err := l.db.WithContext(ctx).Find(&extraExpenses).Error
		if err != nil {
			log.Error().Err(err).Msg("could not load extra expenses")
			return nil
		}

		s.ExtraExpenses = filterMonth(extraExpenses, month, func(e models.ExtraExpense) types.Date { return e.Date })
		return nil
	})

	g.Go(func() error {
		var goals []models.SavingsGoal
		err := l.db.WithContext(ctx).Find(&goals).Error
		if err != nil {
			log.Error().Err(err).Msg("could not load savings goals")
			return nil
		}

		collator := collate.New(language.Spanish)
		slices.SortStableFunc(goals, func(a, b models.SavingsGoal) int {
			return collator.CompareString(a.Name, b.Name)
		})

		s.Goals = goals
		return nil
	})

	g.Go(func() error {
		settings, err := models.LoadSettings(l.db.WithContext(ctx))
		if err != nil {
			log.Error().Err(err).Msg("could not load settings")
			return nil
		}

		s.MonthlyIncome = settings.MonthlyIncome
		return nil
	})

	// The closures above never return errors
	_ = g.Wait()

	return s
}

// filterMonth returns the entries that fall into the month, newest first.
func filterMonth[T any](entries []T, month types.Month, date func(T) types.Date) []T {
	filtered := []T{}
	for _, entry := range entries {
		if month.Contains(time.Time(date(entry))) {
			filtered = append(filtered, entry)
		}
	}

	slices.SortStableFunc(filtered, func(a, b T) int {
		if date(a).Before(date(b)) {
			return 1
		}

		if date(b).Before(date(a)) {
			return -1
		}

		return 0
	})

	return filtered
}

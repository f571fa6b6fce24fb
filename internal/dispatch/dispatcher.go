// Package dispatch funnels every state change through one code path.
// Commands validate before anything is written, apply their change through
// the models package and invalidate the cached session afterwards.
package dispatch

import (
	"sync"
	"time"

	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/control-finanzas/backend/internal/types"
	"gorm.io/gorm"
)

// Command is a single state change.
type Command interface {
	// Validate checks the command before anything is written.
	Validate() error

	apply(db *gorm.DB) error
}

// Dispatcher applies commands and keeps track of the selected month.
type Dispatcher struct {
	db      *gorm.DB
	session *session.Session

	mu    sync.Mutex
	month types.Month
}

func New(db *gorm.DB, s *session.Session) *Dispatcher {
	return &Dispatcher{
		db:      db,
		session: s,
		month:   types.MonthOf(time.Now()),
	}
}

// Month returns the currently selected month.
func (d *Dispatcher) Month() types.Month {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.month
}

// Apply validates and executes a command. Validation errors surface before
// any write happens. Commands that change data invalidate the session so
// the next snapshot is loaded fresh.
func (d *Dispatcher) Apply(cmd Command) error {
	err := cmd.Validate()
	if err != nil {
		return err
	}

	err = cmd.apply(d.db)
	if err != nil {
		return err
	}

	if change, ok := cmd.(*ChangeMonth); ok {
		d.mu.Lock()
		d.month = change.Month
		d.mu.Unlock()
		return nil
	}

	d.session.Invalidate()
	return nil
}

var (
	defaultMu         sync.Mutex
	defaultDispatcher *Dispatcher
	defaultDB         *gorm.DB
)

// Default returns the dispatcher for the global database connection. The
// dispatcher is replaced when the connection changes.
func Default() *Dispatcher {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultDispatcher == nil || defaultDB != models.DB {
		defaultDB = models.DB
		defaultDispatcher = New(models.DB, session.Default())
	}

	return defaultDispatcher
}

package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"gorm.io/gorm"
)

// Session caches the snapshot of the month that was requested last.
//
// Loads run outside the lock. Every write to the database bumps the
// generation, a load that started before the write finds the generation
// changed and its result is thrown away instead of overwriting newer data.
type Session struct {
	loader     *Loader
	mu         sync.Mutex
	snapshot   *Snapshot
	generation atomic.Uint64
}

func New(loader *Loader) *Session {
	return &Session{loader: loader}
}

// Snapshot returns the cached snapshot when it matches the month and loads
// a fresh one otherwise.
func (s *Session) Snapshot(ctx context.Context, month types.Month) *Snapshot {
	s.mu.Lock()
	if s.snapshot != nil && s.snapshot.Month.Equal(month) {
		snapshot := s.snapshot
		s.mu.Unlock()
		return snapshot
	}
	s.mu.Unlock()

	generation := s.begin()
	snapshot := s.loader.Load(ctx, month)
	s.finish(generation, snapshot)

	return snapshot
}

// Invalidate drops the cached snapshot and marks loads that are still in
// flight as stale.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation.Add(1)
	s.snapshot = nil
}

// begin marks the start of a load.
func (s *Session) begin() uint64 {
	return s.generation.Load()
}

// finish caches the snapshot unless the generation moved on while the load
// was running. It reports whether the snapshot was cached.
func (s *Session) finish(generation uint64, snapshot *Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation.Load() != generation {
		return false
	}

	s.snapshot = snapshot
	return true
}

var (
	defaultMu      sync.Mutex
	defaultSession *Session
	defaultDB      *gorm.DB
)

// Default returns the session for the global database connection. The
// session is replaced when the connection changes.
func Default() *Session {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSession == nil || defaultDB != models.DB {
		defaultDB = models.DB
		defaultSession = New(NewLoader(models.DB))
	}

	return defaultSession
}

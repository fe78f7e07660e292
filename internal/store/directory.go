// Package store owns the in-memory aggregate. All reads hand out deep
// copies and all writes go through Update, so callers never observe a
// half-applied transition.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
)

// Directory is the canonical holder of accounts, students, faculty and
// courses, plus the single-slot session. It assumes one writer at a time;
// the internal lock only guards against a multi-threaded host.
type Directory struct {
	mu      sync.RWMutex
	snap    *models.Snapshot
	session string

	logger    *zap.Logger
	onCommit  func(*models.Snapshot)
	onSession func(string)
}

// Option customises a Directory.
type Option func(*Directory)

// WithCommitHook registers a callback invoked with a fresh copy of the
// aggregate after every successful Update.
func WithCommitHook(fn func(*models.Snapshot)) Option {
	return func(d *Directory) { d.onCommit = fn }
}

// WithSessionHook registers a callback invoked whenever the session slot
// changes. The argument is the active account id, empty when cleared.
func WithSessionHook(fn func(string)) Option {
	return func(d *Directory) { d.onSession = fn }
}

// New builds a Directory around the given aggregate.
func New(snap *models.Snapshot, logger *zap.Logger, opts ...Option) *Directory {
	if snap == nil {
		snap = Seed()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Directory{snap: snap, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Snapshot returns a deep copy of the current aggregate.
func (d *Directory) Snapshot() *models.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap.Clone()
}

// Update applies fn to a copy of the aggregate and commits the copy only
// when fn returns nil. A failed transition leaves the aggregate untouched.
func (d *Directory) Update(fn func(*models.Snapshot) error) error {
	d.mu.Lock()
	next := d.snap.Clone()
	if err := fn(next); err != nil {
		d.mu.Unlock()
		return err
	}
	d.snap = next
	hook := d.onCommit
	var out *models.Snapshot
	if hook != nil {
		out = next.Clone()
	}
	d.mu.Unlock()

	if hook != nil {
		hook(out)
	}
	return nil
}

// Session returns the active account id, empty when no session is live.
func (d *Directory) Session() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.session
}

// SessionAccount resolves the active session to its account.
func (d *Directory) SessionAccount() (models.Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.session == "" {
		return models.Account{}, false
	}
	acc := d.snap.AccountByID(d.session)
	if acc == nil {
		return models.Account{}, false
	}
	return *acc, true
}

// SetSession establishes accountID as the active session.
func (d *Directory) SetSession(accountID string) {
	d.setSession(accountID)
}

// RestoreSession re-establishes a previously persisted session without
// notifying the session hook, so a restore does not re-save the value it
// was just loaded from.
func (d *Directory) RestoreSession(accountID string) {
	d.mu.Lock()
	d.session = accountID
	d.mu.Unlock()
}

// ClearSession drops the active session. Idempotent.
func (d *Directory) ClearSession() {
	d.setSession("")
}

func (d *Directory) setSession(accountID string) {
	d.mu.Lock()
	d.session = accountID
	hook := d.onSession
	d.mu.Unlock()

	if hook != nil {
		hook(accountID)
	}
}

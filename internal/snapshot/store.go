// Package snapshot is the durability boundary: the whole aggregate is
// loaded and saved as a single structured document, and the session as a
// single optional account reference. Saves are fire-and-forget; a failed
// save never rolls back in-memory state.
package snapshot

import (
	"context"
	"errors"

	"github.com/noah-isme/campus-erp-api/internal/models"
)

// ErrNotFound signals that no document has been persisted yet. Callers
// fall back to the seed dataset, as they do for a malformed document.
var ErrNotFound = errors.New("snapshot: not found")

// Store persists the aggregate document and the session reference.
type Store interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
	LoadSession(ctx context.Context) (string, error)
	SaveSession(ctx context.Context, accountID string) error
}

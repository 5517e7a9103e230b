package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/pickup"
)

// PickupJournal stores the outcome of every verified confirmation attempt.
type PickupJournal interface {
	// Add persists a new entry.
	Add(ctx context.Context, entry *pickup.Entry) error

	// Update persists the resolution of an existing entry.
	// Returns errs.ErrObjectNotFound for unknown entries.
	Update(ctx context.Context, entry *pickup.Entry) error

	// Get returns one entry by id.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Entry, error)

	// GetAllPending returns ambiguous entries still awaiting reconciliation,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*pickup.Entry, error)

	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]*pickup.Entry, error)
}

// Package commands contains the pickup operations that change state: confirming
// a pickup and reconciling ambiguous confirmations.
// Every command is built through its constructor, validated, and handled by a
// dedicated handler.
package commands

import (
	"context"

	"pickup/internal/core/domain/model/pickup"
)

// Narrow views of ports.PickupJournal used by command handlers.
type (
	// JournalWriter records confirmation outcomes.
	JournalWriter interface {
		Add(ctx context.Context, entry *pickup.Entry) error
	}

	// PendingJournal lists and resolves ambiguous confirmation outcomes.
	//
	// Example:
	//   pending, err := journal.GetAllPending(ctx)
	//   for _, entry := range pending {
	//       _ = entry.Resolve(applied, time.Now())
	//       err = journal.Update(ctx, entry)
	//   }
	PendingJournal interface {
		GetAllPending(ctx context.Context) ([]*pickup.Entry, error)
		Update(ctx context.Context, entry *pickup.Entry) error
	}
)

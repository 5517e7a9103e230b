package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
)

// PickupLedger is the authoritative record of orders that completed pickup
// confirmation. It lives for the lifetime of the process.
type PickupLedger interface {
	// Acquire blocks until the caller holds the per-order lock or ctx ends.
	// The returned release func must be called exactly once. Orders with
	// different ids never contend.
	Acquire(ctx context.Context, id kernel.OrderID) (release func(), err error)

	// IsConfirmed reports whether the order was already marked.
	IsConfirmed(ctx context.Context, id kernel.OrderID) (bool, error)

	// MarkConfirmed records a confirmed pickup. Only called after upstream
	// accepted the fulfillment, or when nothing is left to fulfill upstream.
	MarkConfirmed(ctx context.Context, id kernel.OrderID) error
}

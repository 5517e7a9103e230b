package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

var ErrNoAmbiguousPickups = errors.New("no ambiguous pickups to reconcile")

// ReconcilePickupsCommandHandler settles journal entries whose fulfillment
// request may or may not have been applied upstream. It only reads orders and
// never sends a fulfillment request.
//
// For each pending entry, under the per-order ledger lock:
//   - if upstream shows nothing left to fulfill automatically, the ledger is
//     marked and the entry resolved as applied
//   - otherwise the entry is resolved as not applied and the customer's link
//     works again
//   - if the order cannot be read, the entry stays pending for the next pass
type ReconcilePickupsCommandHandler struct {
	ledger      ports.PickupLedger
	reader      ports.OrderReader
	journal     PendingJournal
	partitioner services.LineItemPartitioner

	upstreamTimeout time.Duration
	logger          *slog.Logger
	now             func() time.Time
}

func NewReconcilePickupsCommandHandler(
	ledger ports.PickupLedger,
	reader ports.OrderReader,
	journal PendingJournal,
	upstreamTimeout time.Duration,
	logger *slog.Logger,
) *ReconcilePickupsCommandHandler {
	return &ReconcilePickupsCommandHandler{
		ledger:          ledger,
		reader:          reader,
		journal:         journal,
		partitioner:     services.NewLineItemPartitioner(),
		upstreamTimeout: upstreamTimeout,
		logger:          logger.With("component", "reconcile-pickups"),
		now:             time.Now,
	}
}

// Handle returns ErrNoAmbiguousPickups when nothing is pending. Failures of
// individual entries are joined; the remaining entries are still processed.
func (h *ReconcilePickupsCommandHandler) Handle(ctx context.Context, command ReconcilePickupsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pending, err := h.journal.GetAllPending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoAmbiguousPickups
	}

	var failures []error
	for _, entry := range pending {
		if err := h.reconcile(ctx, entry); err != nil {
			failures = append(failures, fmt.Errorf("entry %s for order %s: %w", entry.ID(), entry.OrderID(), err))
		}
	}
	return errors.Join(failures...)
}

func (h *ReconcilePickupsCommandHandler) reconcile(ctx context.Context, entry *pickup.Entry) error {
	id := entry.OrderID()

	release, err := h.ledger.Acquire(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	applied, err := h.isApplied(ctx, entry)
	if err != nil {
		return err
	}

	if applied {
		if err := h.ledger.MarkConfirmed(ctx, id); err != nil {
			return err
		}
	}

	if err := entry.Resolve(applied, h.now()); err != nil {
		return err
	}
	if err := h.journal.Update(ctx, entry); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "reconciled ambiguous pickup",
		"order_id", id.String(), "entry_id", entry.ID().String(), "resolution", entry.Resolution().String())
	return nil
}

func (h *ReconcilePickupsCommandHandler) isApplied(ctx context.Context, entry *pickup.Entry) (bool, error) {
	confirmed, err := h.ledger.IsConfirmed(ctx, entry.OrderID())
	if err != nil {
		return false, err
	}
	if confirmed {
		return true, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, h.upstreamTimeout)
	defer cancel()

	o, err := h.reader.GetOrder(fetchCtx, entry.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return o.IsFulfilled() || len(h.partitioner.Partition(o).AutoFulfillable) == 0, nil
}

package pickup

import (
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

var (
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")
	ErrEntryIsNotPending     = errors.New("only pending entries can be resolved")
)

// Resolution tracks the reconciliation state of a journal entry.
type Resolution int

const (
	// ResolutionNone: the outcome was definite, nothing to reconcile.
	ResolutionNone Resolution = iota
	// ResolutionPending: a fulfillment request may or may not have been applied upstream.
	ResolutionPending
	// ResolutionApplied: reconciliation found the order fulfilled upstream.
	ResolutionApplied
	// ResolutionNotApplied: reconciliation found the order still waiting for pickup.
	ResolutionNotApplied
)

func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "none"
	case ResolutionPending:
		return "pending"
	case ResolutionApplied:
		return "applied"
	case ResolutionNotApplied:
		return "not_applied"
	default:
		return "unknown"
	}
}

func ParseResolution(raw string) (Resolution, error) {
	for r := ResolutionNone; r <= ResolutionNotApplied; r++ {
		if r.String() == raw {
			return r, nil
		}
	}
	return ResolutionNone, errs.NewValueIsInvalidErrorWithCause("resolution is invalid", fmt.Errorf("%q is not a valid resolution", raw))
}

func (r Resolution) Validate() error {
	if r < ResolutionNone || r > ResolutionNotApplied {
		return errs.NewValueIsInvalidErrorWithCause("resolution is invalid", fmt.Errorf("%d is not a valid resolution", r))
	}
	return nil
}

// Entry records the outcome of one confirmation attempt for one order.
type Entry struct {
	id kernel.UUID

	orderID kernel.OrderID

	status Status

	// strategy is the last request shape sent upstream, StrategyNone if nothing was sent.
	strategy fulfillment.Strategy

	location *kernel.LocationID

	// attempts counts fulfillment requests sent upstream.
	attempts int

	resolution Resolution

	createdAt time.Time

	resolvedAt *time.Time

	isConstructed bool
}

// NewEntry records a fresh outcome. Ambiguous entries start as ResolutionPending.
func NewEntry(
	orderID kernel.OrderID,
	status Status,
	strategy fulfillment.Strategy,
	location *kernel.LocationID,
	attempts int,
	ambiguous bool,
	createdAt time.Time,
) (*Entry, error) {
	resolution := ResolutionNone
	if ambiguous {
		resolution = ResolutionPending
	}

	return RestoreEntry(kernel.NewUUID(), orderID, status, strategy, location, attempts, resolution, createdAt, nil)
}

// RestoreEntry rebuilds an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.OrderID,
	status Status,
	strategy fulfillment.Strategy,
	location *kernel.LocationID,
	attempts int,
	resolution Resolution,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*Entry, error) {
	e := &Entry{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setStatus(status),
		e.setStrategy(strategy),
		e.setLocation(location),
		e.setAttempts(attempts),
		e.setResolution(resolution, resolvedAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) OrderID() kernel.OrderID {
	return e.orderID
}

func (e *Entry) Status() Status {
	return e.status
}

func (e *Entry) Strategy() fulfillment.Strategy {
	return e.strategy
}

func (e *Entry) Location() *kernel.LocationID {
	if e.location == nil {
		return nil
	}
	loc := *e.location
	return &loc
}

func (e *Entry) Attempts() int {
	return e.attempts
}

func (e *Entry) Resolution() Resolution {
	return e.resolution
}

func (e *Entry) IsAmbiguous() bool {
	return e.resolution != ResolutionNone
}

func (e *Entry) IsPending() bool {
	return e.resolution == ResolutionPending
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) ResolvedAt() *time.Time {
	if e.resolvedAt == nil {
		return nil
	}
	at := *e.resolvedAt
	return &at
}

// Resolve closes a pending entry once reconciliation has observed the upstream order.
func (e *Entry) Resolve(applied bool, at time.Time) error {
	if !e.IsPending() {
		return ErrEntryIsNotPending
	}

	e.resolution = ResolutionNotApplied
	if applied {
		e.resolution = ResolutionApplied
	}
	resolvedAt := at.UTC()
	e.resolvedAt = &resolvedAt
	return nil
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.orderID = id
	return nil
}

func (e *Entry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Entry) setStrategy(strategy fulfillment.Strategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}
	e.strategy = strategy
	return nil
}

func (e *Entry) setLocation(location *kernel.LocationID) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	e.location = &loc
	return nil
}

func (e *Entry) setAttempts(attempts int) error {
	if attempts < 0 || attempts > len(fulfillment.CascadeOrder) {
		return errs.NewValueIsOutOfRangeError("attempts", attempts, 0, len(fulfillment.CascadeOrder))
	}
	e.attempts = attempts
	return nil
}

func (e *Entry) setResolution(resolution Resolution, resolvedAt *time.Time) error {
	if err := resolution.Validate(); err != nil {
		return err
	}

	closed := resolution == ResolutionApplied || resolution == ResolutionNotApplied
	if closed != (resolvedAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"resolution is invalid",
			fmt.Errorf("%s must come with a resolution time only when closed", resolution),
		)
	}

	e.resolution = resolution
	if resolvedAt != nil {
		at := resolvedAt.UTC()
		e.resolvedAt = &at
	}
	return nil
}

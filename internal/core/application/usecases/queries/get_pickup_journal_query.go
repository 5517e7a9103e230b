package queries

import (
	"errors"
	"time"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)

var ErrGetPickupJournalQueryIsNotConstructed = errors.New(
	"GetPickupJournalQuery must be created via NewGetPickupJournalQuery constructor",
)

// GetPickupJournalQuery lists the most recent pickup outcomes.
type GetPickupJournalQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetPickupJournalQuery accepts limits from 1 to MaxJournalLimit.
func NewGetPickupJournalQuery(limit int) (GetPickupJournalQuery, error) {
	if limit < 1 || limit > MaxJournalLimit {
		return GetPickupJournalQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxJournalLimit)
	}
	return GetPickupJournalQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPickupJournalQuery) Limit() int {
	return q.limit
}

func (q GetPickupJournalQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupJournalQueryIsNotConstructed)
}

// GetPickupJournalQueryResponse is one journal entry in display form.
type GetPickupJournalQueryResponse struct {
	ID         string
	OrderID    string
	Status     string
	Strategy   string
	LocationID *int64
	Attempts   int
	Ambiguous  bool
	Resolution string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

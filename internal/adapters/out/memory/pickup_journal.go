package memory

import (
	"context"
	"slices"
	"sync"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

var _ ports.PickupJournal = (*PickupJournal)(nil)

// PickupJournal keeps entries in insertion order. Entries are copied on the
// way in and out so callers never share state with the store.
type PickupJournal struct {
	mu      sync.RWMutex
	entries []*pickup.Entry
	index   map[kernel.UUID]int
}

func NewPickupJournal() *PickupJournal {
	return &PickupJournal{index: make(map[kernel.UUID]int)}
}

func (j *PickupJournal) Add(_ context.Context, entry *pickup.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	stored, err := clone(entry)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.index[entry.ID()]; ok {
		return errs.NewValueIsInvalidError("pickup entry " + entry.ID().String() + " already exists")
	}
	j.index[entry.ID()] = len(j.entries)
	j.entries = append(j.entries, stored)
	return nil
}

func (j *PickupJournal) Update(_ context.Context, entry *pickup.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	stored, err := clone(entry)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	i, ok := j.index[entry.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("pickup entry", entry.ID().String())
	}
	j.entries[i] = stored
	return nil
}

func (j *PickupJournal) Get(_ context.Context, id kernel.UUID) (*pickup.Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	i, ok := j.index[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pickup entry", id.String())
	}
	return clone(j.entries[i])
}

func (j *PickupJournal) GetAllPending(_ context.Context) ([]*pickup.Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var pending []*pickup.Entry
	for _, e := range j.entries {
		if !e.IsPending() {
			continue
		}
		c, err := clone(e)
		if err != nil {
			return nil, err
		}
		pending = append(pending, c)
	}
	return pending, nil
}

func (j *PickupJournal) List(_ context.Context, limit int) ([]*pickup.Entry, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	result := make([]*pickup.Entry, 0, min(limit, len(j.entries)))
	for _, e := range slices.Backward(j.entries) {
		if len(result) == limit {
			break
		}
		c, err := clone(e)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func clone(e *pickup.Entry) (*pickup.Entry, error) {
	return pickup.RestoreEntry(
		e.ID(),
		e.OrderID(),
		e.Status(),
		e.Strategy(),
		e.Location(),
		e.Attempts(),
		e.Resolution(),
		e.CreatedAt(),
		e.ResolvedAt(),
	)
}

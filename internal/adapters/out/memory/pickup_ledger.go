package memory

import (
	"context"
	"sync"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/ports"
)

var _ ports.PickupLedger = (*PickupLedger)(nil)

// orderLock is a context-aware mutex for one order id. refs counts holders
// and waiters so the lock can be dropped once nobody needs it.
type orderLock struct {
	sem  chan struct{}
	refs int
}

// PickupLedger keeps confirmed order ids in a map and serializes work per order id.
type PickupLedger struct {
	mu        sync.Mutex
	confirmed map[string]struct{}
	locks     map[string]*orderLock
}

func NewPickupLedger() *PickupLedger {
	return &PickupLedger{
		confirmed: make(map[string]struct{}),
		locks:     make(map[string]*orderLock),
	}
}

func (l *PickupLedger) Acquire(ctx context.Context, id kernel.OrderID) (func(), error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	key := id.String()

	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &orderLock{sem: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, lock)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.sem
			l.unref(key, lock)
		})
	}, nil
}

func (l *PickupLedger) IsConfirmed(_ context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.confirmed[id.String()]
	return ok, nil
}

func (l *PickupLedger) MarkConfirmed(_ context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.confirmed[id.String()] = struct{}{}
	return nil
}

// Len returns the number of confirmed orders.
func (l *PickupLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.confirmed)
}

func (l *PickupLedger) unref(key string, lock *orderLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}

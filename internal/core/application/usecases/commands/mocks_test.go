package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	storeLocation     = 78097875044
	warehouseLocation = 79217262692
	pickupMessage     = "Pickup confirmed by customer"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) ListFulfillmentLocations(ctx context.Context) ([]kernel.LocationID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.LocationID), args.Error(1)
}

func (m *MockOrderGateway) CreateFulfillment(
	ctx context.Context,
	id kernel.OrderID,
	req fulfillment.Request,
) (fulfillment.Receipt, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(fulfillment.Receipt), args.Error(1)
}

type MockJournal struct{ mock.Mock }

func (m *MockJournal) Add(ctx context.Context, entry *pickup.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournal) GetAllPending(ctx context.Context) ([]*pickup.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickup.Entry), args.Error(1)
}

func (m *MockJournal) Update(ctx context.Context, entry *pickup.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func token(id string) string {
	return services.NewCapabilityToken().Derive(kernel.MustNewOrderID(id))
}

func entryWithStatus(status pickup.Status) any {
	return mock.MatchedBy(func(e *pickup.Entry) bool { return e.Status() == status })
}

func strategyIs(s fulfillment.Strategy) any {
	return mock.MatchedBy(func(r fulfillment.Request) bool { return r.Strategy() == s })
}

func newResolver(t *testing.T, withDefault bool) *services.LocationResolver {
	t.Helper()
	warehouse, err := services.NewLocationRule(kernel.MustNewLocationID(warehouseLocation), []string{"מחסן"})
	require.NoError(t, err)
	store, err := services.NewLocationRule(kernel.MustNewLocationID(storeLocation), []string{"חנות"})
	require.NoError(t, err)

	var fallback *kernel.LocationID
	if withDefault {
		loc := kernel.MustNewLocationID(storeLocation)
		fallback = &loc
	}

	resolver, err := services.NewLocationResolver([]services.LocationRule{warehouse, store}, fallback)
	require.NoError(t, err)
	return resolver
}

type orderSpec struct {
	id          string
	financial   order.FinancialStatus
	fulfillment order.FulfillmentStatus
	items       []order.LineItem
	shipping    []order.ShippingLine
}

func newOrder(t *testing.T, spec orderSpec) *order.Order {
	t.Helper()
	if spec.financial == order.FinancialStatusUnknown {
		spec.financial = order.FinancialStatusPaid
	}
	if spec.fulfillment == order.FulfillmentStatusUnknown {
		spec.fulfillment = order.FulfillmentStatusUnfulfilled
	}
	o, err := order.NewOrder(kernel.MustNewOrderID(spec.id), "#"+spec.id, spec.financial, spec.fulfillment,
		spec.items, spec.shipping, nil)
	require.NoError(t, err)
	return o
}

func newItem(t *testing.T, id int64, fulfillable int, service string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(id, "item", fulfillable, fulfillable, order.FulfillmentStatusUnfulfilled, service)
	require.NoError(t, err)
	return item
}

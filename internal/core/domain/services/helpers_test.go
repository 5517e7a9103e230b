package services_test

import (
	"testing"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newLineItem(t *testing.T, id int64, fulfillable int, status order.FulfillmentStatus, service string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(id, "item", fulfillable, fulfillable, status, service)
	require.NoError(t, err)
	return item
}

type orderOption func(*orderFixture)

type orderFixture struct {
	id          string
	financial   order.FinancialStatus
	fulfillment order.FulfillmentStatus
	items       []order.LineItem
	shipping    []order.ShippingLine
	location    *kernel.LocationID
}

func withFinancial(s order.FinancialStatus) orderOption {
	return func(f *orderFixture) { f.financial = s }
}

func withFulfillment(s order.FulfillmentStatus) orderOption {
	return func(f *orderFixture) { f.fulfillment = s }
}

func withItems(items ...order.LineItem) orderOption {
	return func(f *orderFixture) { f.items = items }
}

func withShipping(title, code string) orderOption {
	return func(f *orderFixture) { f.shipping = append(f.shipping, order.NewShippingLine(title, code)) }
}

func withLocation(id int64) orderOption {
	return func(f *orderFixture) {
		loc := kernel.MustNewLocationID(id)
		f.location = &loc
	}
}

func newOrder(t *testing.T, opts ...orderOption) *order.Order {
	t.Helper()
	f := &orderFixture{
		id:          "1001",
		financial:   order.FinancialStatusPaid,
		fulfillment: order.FulfillmentStatusUnfulfilled,
	}
	for _, opt := range opts {
		opt(f)
	}

	o, err := order.NewOrder(kernel.MustNewOrderID(f.id), "#"+f.id, f.financial, f.fulfillment, f.items, f.shipping, f.location)
	require.NoError(t, err)
	return o
}

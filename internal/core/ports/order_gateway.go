// Package ports defines the contracts between the pickup use cases and the
// infrastructure: the upstream order-management gateway, the in-process pickup
// ledger and the pickup journal.
package ports

import (
	"context"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
)

// OrderReader fetches order snapshots from the upstream order-management system.
type OrderReader interface {
	// GetOrder returns the current snapshot of an order.
	// A missing order is reported as errs.ErrObjectNotFound; any other error is
	// a transport or remote failure.
	GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}

// LocationLister lists the fulfillment locations known upstream.
type LocationLister interface {
	// ListFulfillmentLocations returns active locations in upstream order.
	ListFulfillmentLocations(ctx context.Context) ([]kernel.LocationID, error)
}

// FulfillmentCreator submits fulfillment requests upstream.
type FulfillmentCreator interface {
	// CreateFulfillment sends exactly one request and never retries it.
	//
	// Error contract:
	//   - *fulfillment.RejectedError: upstream answered and refused the request
	//   - fulfillment.ErrRequestNotSent (wrapped): the request never left the
	//     process, e.g. the rate limiter could not admit it before the deadline
	//   - any other error: transport failure or timeout; the request may or may
	//     not have been applied upstream
	CreateFulfillment(ctx context.Context, id kernel.OrderID, req fulfillment.Request) (fulfillment.Receipt, error)
}

// OrderGateway is the full upstream boundary consumed by the pickup flow.
type OrderGateway interface {
	OrderReader
	LocationLister
	FulfillmentCreator
}

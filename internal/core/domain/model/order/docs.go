// Package order models the read-only order snapshot fetched from the upstream
// order-management system.
//
// The package includes:
//   - Order: the snapshot aggregate (payment state, fulfillment state, items, shipping lines)
//   - LineItem: a purchased item with its remaining fulfillable quantity
//   - ShippingLine: the delivery option the shopper chose, used as a location hint
//   - FinancialStatus and FulfillmentStatus: parsed upstream status strings
//
// Snapshots are never mutated by this service; they are rebuilt on every request.
package order

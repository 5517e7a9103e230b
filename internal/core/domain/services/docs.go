// Package services holds the stateless domain services of the pickup flow.
//
// The package includes:
//   - CapabilityToken: derives and verifies the per-order link token
//   - OrderStateGate: rejects orders already fulfilled or not yet paid
//   - LineItemPartitioner: splits eligible items into auto-fulfillable and manual
//   - LocationResolver: attributes an order to a physical location
//   - FulfillmentPlanner: builds the cascade of fulfillment request shapes
//
// Everything here is a pure function of its inputs except LocationResolver,
// whose last resort is a remote lookup passed in by the caller.
package services

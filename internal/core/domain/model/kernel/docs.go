// Package kernel provides the value objects shared by every part of the pickup domain.
//
// The package includes:
//   - OrderID: the upstream order identifier, in its canonical decimal string form
//   - LocationID: an upstream fulfillment location identifier
//   - UUID: identifiers for records this service owns, such as pickup journal entries
//
// All value objects are immutable and must be built through their constructors;
// zero values fail Validate.
package kernel

// Package memory provides process-local implementations of the pickup ledger
// and the pickup journal.
//
// The ledger is the only implementation of ports.PickupLedger: confirmation
// state lives as long as the process and is not shared between instances.
// The journal is used when no database is configured.
package memory

// Package queries contains read-only pickup operations: the confirmation page
// preview and the pickup journal listing. Query handlers never mutate the
// ledger or send requests that change upstream state.
package queries

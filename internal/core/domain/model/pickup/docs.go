// Package pickup holds the outcome taxonomy of the pickup confirmation flow and
// the journal entry recorded for every confirmation attempt.
//
// Status enumerates every terminal outcome, from FULFILLED to the rejection
// reasons shown to the shopper. Entry is the journal record kept for operators,
// including entries whose upstream effect is unknown and await reconciliation.
package pickup

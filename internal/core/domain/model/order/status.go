package order

import (
	"fmt"
	"strings"

	"pickup/internal/pkg/errs"
)

// FinancialStatus is the payment state reported upstream.
type FinancialStatus int

const (
	// FinancialStatusUnknown is the zero value and never produced by parsing.
	FinancialStatusUnknown FinancialStatus = iota
	FinancialStatusPending
	FinancialStatusPaid
	// FinancialStatusOther covers authorized, refunded, voided and any future states.
	FinancialStatusOther
)

func getFinancialStatusStrings() map[FinancialStatus]string {
	return map[FinancialStatus]string{
		FinancialStatusUnknown: "unknown",
		FinancialStatusPending: "pending",
		FinancialStatusPaid:    "paid",
		FinancialStatusOther:   "other",
	}
}

// ParseFinancialStatus maps an upstream financial_status string. Anything other
// than "paid" or "pending" becomes FinancialStatusOther.
func ParseFinancialStatus(raw string) FinancialStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid":
		return FinancialStatusPaid
	case "pending":
		return FinancialStatusPending
	default:
		return FinancialStatusOther
	}
}

func (s FinancialStatus) String() string {
	if str, ok := getFinancialStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s FinancialStatus) Validate() error {
	if s <= FinancialStatusUnknown || s > FinancialStatusOther {
		return errs.NewValueIsInvalidErrorWithCause(
			"financial status is invalid",
			fmt.Errorf("%d is not a valid financial status", s),
		)
	}
	return nil
}

// FulfillmentStatus is the fulfillment state reported upstream, either for a
// whole order or for a single line item.
type FulfillmentStatus int

const (
	// FulfillmentStatusUnknown is the zero value and never produced by parsing.
	FulfillmentStatusUnknown FulfillmentStatus = iota
	// FulfillmentStatusUnfulfilled covers both a null status and "unfulfilled".
	FulfillmentStatusUnfulfilled
	FulfillmentStatusPartial
	FulfillmentStatusFulfilled
	// FulfillmentStatusOther covers restocked, not_eligible and any future states.
	FulfillmentStatusOther
)

func getFulfillmentStatusStrings() map[FulfillmentStatus]string {
	return map[FulfillmentStatus]string{
		FulfillmentStatusUnknown:     "unknown",
		FulfillmentStatusUnfulfilled: "unfulfilled",
		FulfillmentStatusPartial:     "partial",
		FulfillmentStatusFulfilled:   "fulfilled",
		FulfillmentStatusOther:       "other",
	}
}

// ParseFulfillmentStatus maps an upstream fulfillment_status. A nil or empty
// value means nothing has been fulfilled yet.
func ParseFulfillmentStatus(raw *string) FulfillmentStatus {
	if raw == nil {
		return FulfillmentStatusUnfulfilled
	}

	switch strings.ToLower(strings.TrimSpace(*raw)) {
	case "", "null", "unfulfilled":
		return FulfillmentStatusUnfulfilled
	case "partial":
		return FulfillmentStatusPartial
	case "fulfilled":
		return FulfillmentStatusFulfilled
	default:
		return FulfillmentStatusOther
	}
}

func (s FulfillmentStatus) String() string {
	if str, ok := getFulfillmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s FulfillmentStatus) Validate() error {
	if s <= FulfillmentStatusUnknown || s > FulfillmentStatusOther {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment status is invalid",
			fmt.Errorf("%d is not a valid fulfillment status", s),
		)
	}
	return nil
}

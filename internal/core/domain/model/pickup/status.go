package pickup

import (
	"fmt"

	"pickup/internal/pkg/errs"
)

// Status is the terminal outcome of a pickup request.
type Status int

const (
	Unknown Status = iota

	// Fulfilled: the upstream accepted a fulfillment and the ledger is marked.
	Fulfilled

	// Ready: a preview found the order eligible for confirmation.
	Ready

	BadRequest

	InvalidToken

	AlreadyConfirmed

	OrderNotFound

	AlreadyFulfilled

	PaymentIncomplete

	NoFulfillableItems

	LocationUnresolved

	ItemsUnavailable

	OrderProcessingError

	UpstreamRejected

	UpstreamError

	Internal

	// PickupInProgress: another confirmation for the same order held the lock
	// until the caller gave up.
	PickupInProgress
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "UNKNOWN",
		Fulfilled:            "FULFILLED",
		Ready:                "READY",
		BadRequest:           "BAD_REQUEST",
		InvalidToken:         "INVALID_TOKEN",
		AlreadyConfirmed:     "ALREADY_CONFIRMED",
		OrderNotFound:        "ORDER_NOT_FOUND",
		AlreadyFulfilled:     "ALREADY_FULFILLED",
		PaymentIncomplete:    "PAYMENT_INCOMPLETE",
		NoFulfillableItems:   "NO_FULFILLABLE_ITEMS",
		LocationUnresolved:   "LOCATION_UNRESOLVED",
		ItemsUnavailable:     "ITEMS_UNAVAILABLE",
		OrderProcessingError: "ORDER_PROCESSING_ERROR",
		UpstreamRejected:     "UPSTREAM_REJECTED",
		UpstreamError:        "UPSTREAM_ERROR",
		Internal:             "INTERNAL",
		PickupInProgress:     "PICKUP_IN_PROGRESS",
	}
}

// AllStatuses lists every valid status in declaration order.
func AllStatuses() []Status {
	statuses := make([]Status, 0, int(PickupInProgress))
	for s := Fulfilled; s <= PickupInProgress; s++ {
		statuses = append(statuses, s)
	}
	return statuses
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok && s != Unknown {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps a status name back to its value. Unknown names give Unknown,
// which fails Validate.
func ParseStatus(raw string) Status {
	for status, str := range getStatusStrings() {
		if str == raw {
			return status
		}
	}
	return Unknown
}

func (s Status) Validate() error {
	if s <= Unknown || s > PickupInProgress {
		return errs.NewValueIsInvalidErrorWithCause("pickup status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsRejection reports whether the status ends the flow without a fulfillment.
func (s Status) IsRejection() bool {
	return s != Fulfilled && s != Ready
}

// IsOperatorAlert reports whether the status should page an operator. Every
// other rejection is an expected outcome of normal operation.
func (s Status) IsOperatorAlert() bool {
	return s == UpstreamError || s == Internal
}

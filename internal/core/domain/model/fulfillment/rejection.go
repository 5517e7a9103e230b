package fulfillment

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestNotSent marks gateway failures that happened before a request
// left the process, so upstream state cannot have changed.
var ErrRequestNotSent = errors.New("request was not sent upstream")

// RejectionClass groups upstream refusals by what the caller should do next.
type RejectionClass int

const (
	RejectionUnknown RejectionClass = iota
	// RejectionNotAcceptable: the request shape was refused; a smaller shape may pass.
	RejectionNotAcceptable
	// RejectionItemsUnavailable: validation failed on line-item eligibility.
	RejectionItemsUnavailable
	// RejectionOrderInvalid: validation failed on the order as a whole.
	RejectionOrderInvalid
	// RejectionOther: any other refusal (auth, throttling, server faults).
	RejectionOther
)

func (c RejectionClass) String() string {
	switch c {
	case RejectionNotAcceptable:
		return "not_acceptable"
	case RejectionItemsUnavailable:
		return "items_unavailable"
	case RejectionOrderInvalid:
		return "order_invalid"
	case RejectionOther:
		return "other"
	default:
		return "unknown"
	}
}

// RejectedError is returned by the upstream gateway when the fulfillment
// endpoint answered with an error status.
type RejectedError struct {
	Class      RejectionClass
	StatusCode int
	Detail     string
}

func NewRejectedError(class RejectionClass, statusCode int, detail string) *RejectedError {
	return &RejectedError{Class: class, StatusCode: statusCode, Detail: detail}
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("fulfillment rejected (%s, status %d): %s", e.Class, e.StatusCode, e.Detail)
}

// IsAmbiguous reports whether the upstream may have applied the mutation even
// though it answered with an error. Server faults are ambiguous.
func (e *RejectedError) IsAmbiguous() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// Receipt is the upstream acknowledgement of an accepted fulfillment.
type Receipt struct {
	ID     int64
	Status string
}

package fulfillment

import (
	"errors"
	"fmt"
	"slices"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

var (
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
	ErrLineItemsAreRequired    = errors.New("explicit strategy requires at least one line item")
	ErrLocationIsRequired      = errors.New("strategy requires a location")
)

// LineItem is one entry of an explicit fulfillment request.
type LineItem struct {
	ID       int64
	Quantity int
}

// Request is the payload of a single fulfillment attempt.
type Request struct {
	strategy       Strategy
	lineItems      []LineItem
	location       *kernel.LocationID
	notifyCustomer bool
	message        string

	isConstructed bool
}

// NewRequest shapes a request for the given strategy. Inputs the strategy does
// not carry are dropped, so callers can pass the full context every time.
//
// Example:
//
//	req, err := fulfillment.NewRequest(fulfillment.StrategyWithoutLineItems, items, location, "Pickup confirmed by customer")
//	// req.LineItems() is empty, req.Location() is location
func NewRequest(strategy Strategy, lineItems []LineItem, location kernel.LocationID, message string) (Request, error) {
	r := Request{
		strategy:       strategy,
		notifyCustomer: true,
		isConstructed:  true,
	}

	switch strategy {
	case StrategyExplicit:
		if len(lineItems) == 0 {
			return Request{}, ErrLineItemsAreRequired
		}
		for _, item := range lineItems {
			if item.ID <= 0 || item.Quantity <= 0 {
				return Request{}, errs.NewValueIsInvalidErrorWithCause(
					"fulfillment line item",
					fmt.Errorf("id %d with quantity %d", item.ID, item.Quantity),
				)
			}
		}
		r.lineItems = slices.Clone(lineItems)
		fallthrough
	case StrategyWithoutLineItems:
		if err := location.Validate(); err != nil {
			return Request{}, errors.Join(ErrLocationIsRequired, err)
		}
		loc := location
		r.location = &loc
		r.message = message
	case StrategyWithoutLocation:
		r.message = message
	case StrategyNotifyOnly:
	default:
		return Request{}, errs.NewValueIsInvalidErrorWithCause(
			"strategy is invalid",
			fmt.Errorf("%s cannot shape a request", strategy),
		)
	}

	return r, nil
}

func (r Request) Validate() error {
	if !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r Request) Strategy() Strategy {
	return r.strategy
}

func (r Request) LineItems() []LineItem {
	return slices.Clone(r.lineItems)
}

// Location returns the target location when the strategy carries one.
func (r Request) Location() (kernel.LocationID, bool) {
	if r.location == nil {
		return kernel.LocationID{}, false
	}
	return *r.location, true
}

func (r Request) NotifyCustomer() bool {
	return r.notifyCustomer
}

func (r Request) Message() string {
	return r.message
}

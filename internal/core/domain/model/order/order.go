package order

import (
	"errors"
	"slices"

	"pickup/internal/core/domain/model/kernel"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a point-in-time snapshot of an upstream order. It is read-only: the
// pickup flow inspects it and asks the upstream system to change it.
type Order struct {
	id kernel.OrderID

	name string

	financialStatus FinancialStatus

	fulfillmentStatus FulfillmentStatus

	lineItems []LineItem

	shippingLines []ShippingLine

	// location is nil when the upstream order carries no assigned location.
	location *kernel.LocationID

	isConstructed bool
}

// NewOrder builds a snapshot. Line items and shipping lines keep the upstream order.
func NewOrder(
	id kernel.OrderID,
	name string,
	financialStatus FinancialStatus,
	fulfillmentStatus FulfillmentStatus,
	lineItems []LineItem,
	shippingLines []ShippingLine,
	location *kernel.LocationID,
) (*Order, error) {
	o := &Order{
		name:          name,
		lineItems:     slices.Clone(lineItems),
		shippingLines: slices.Clone(shippingLines),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setFinancialStatus(financialStatus),
		o.setFulfillmentStatus(fulfillmentStatus),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Name is the shopper-facing order name, e.g. "#1001". May be empty.
func (o *Order) Name() string {
	return o.name
}

func (o *Order) FinancialStatus() FinancialStatus {
	return o.financialStatus
}

func (o *Order) FulfillmentStatus() FulfillmentStatus {
	return o.fulfillmentStatus
}

func (o *Order) IsPaid() bool {
	return o.financialStatus == FinancialStatusPaid
}

func (o *Order) IsFulfilled() bool {
	return o.fulfillmentStatus == FulfillmentStatusFulfilled
}

func (o *Order) LineItems() []LineItem {
	return slices.Clone(o.lineItems)
}

func (o *Order) ShippingLines() []ShippingLine {
	return slices.Clone(o.shippingLines)
}

// FirstShippingLine returns the first shipping line, if any.
func (o *Order) FirstShippingLine() (ShippingLine, bool) {
	if len(o.shippingLines) == 0 {
		return ShippingLine{}, false
	}
	return o.shippingLines[0], true
}

// AssignedLocation returns the location the upstream order is already attributed to, if any.
func (o *Order) AssignedLocation() (kernel.LocationID, bool) {
	if o.location == nil {
		return kernel.LocationID{}, false
	}
	return *o.location, true
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFinancialStatus(status FinancialStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.financialStatus = status
	return nil
}

func (o *Order) setFulfillmentStatus(status FulfillmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.fulfillmentStatus = status
	return nil
}

func (o *Order) setLocation(location *kernel.LocationID) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	o.location = &loc
	return nil
}

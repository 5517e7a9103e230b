package order

import (
	"errors"
	"fmt"

	"pickup/internal/pkg/errs"
)

// ManualFulfillmentService marks items that staff hand over outside the
// upstream fulfillment API.
const ManualFulfillmentService = "manual"

// LineItem is one purchased product line of an order snapshot.
type LineItem struct {
	id                  int64
	title               string
	quantity            int
	fulfillableQuantity int
	fulfillmentStatus   FulfillmentStatus
	fulfillmentService  string
}

// NewLineItem validates identifiers and quantities of an upstream line item.
func NewLineItem(
	id int64,
	title string,
	quantity int,
	fulfillableQuantity int,
	fulfillmentStatus FulfillmentStatus,
	fulfillmentService string,
) (LineItem, error) {
	item := LineItem{
		title:              title,
		fulfillmentService: fulfillmentService,
	}

	if err := errors.Join(
		item.setID(id),
		item.setQuantities(quantity, fulfillableQuantity),
		item.setFulfillmentStatus(fulfillmentStatus),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (l LineItem) ID() int64 {
	return l.id
}

func (l LineItem) Title() string {
	return l.title
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) FulfillableQuantity() int {
	return l.fulfillableQuantity
}

func (l LineItem) FulfillmentStatus() FulfillmentStatus {
	return l.fulfillmentStatus
}

func (l LineItem) FulfillmentService() string {
	return l.fulfillmentService
}

// IsEligible reports whether the item is still waiting for fulfillment: its
// status is null/unfulfilled and something remains to hand over.
func (l LineItem) IsEligible() bool {
	return l.fulfillmentStatus == FulfillmentStatusUnfulfilled && l.fulfillableQuantity > 0
}

// IsManual reports whether the item is handled outside the fulfillment API.
func (l LineItem) IsManual() bool {
	return l.fulfillmentService == ManualFulfillmentService
}

func (l *LineItem) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("line item id", fmt.Errorf("%d is not greater than 0", id))
	}
	l.id = id
	return nil
}

func (l *LineItem) setQuantities(quantity, fulfillableQuantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("line item quantity", fmt.Errorf("%d is negative", quantity))
	}
	if fulfillableQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"line item fulfillable quantity",
			fmt.Errorf("%d is negative", fulfillableQuantity),
		)
	}
	l.quantity = quantity
	l.fulfillableQuantity = fulfillableQuantity
	return nil
}

func (l *LineItem) setFulfillmentStatus(status FulfillmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.fulfillmentStatus = status
	return nil
}

package services

import (
	"errors"

	"pickup/internal/core/domain/model/order"
)

var (
	ErrOrderAlreadyFulfilled = errors.New("order is already fulfilled")
	ErrPaymentIncomplete     = errors.New("order payment is incomplete")
)

// OrderStateGate checks a fetched order snapshot against the pickup preconditions.
//
// Rules are evaluated in a fixed priority order:
//   - an order already reported fulfilled is rejected with ErrOrderAlreadyFulfilled,
//     even when its financial status is not paid
//   - an unpaid order is rejected with ErrPaymentIncomplete
type OrderStateGate struct{}

func NewOrderStateGate() OrderStateGate {
	return OrderStateGate{}
}

// Check returns nil when the order may proceed to partitioning.
func (OrderStateGate) Check(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.IsFulfilled() {
		return ErrOrderAlreadyFulfilled
	}

	if !o.IsPaid() {
		return ErrPaymentIncomplete
	}

	return nil
}

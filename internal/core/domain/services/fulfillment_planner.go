package services

import (
	"errors"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
)

// ErrNothingToFulfill is returned when a plan is requested for a partition
// without auto-fulfillable items.
var ErrNothingToFulfill = errors.New("no auto-fulfillable line items")

// FulfillmentPlanner builds the cascade of fulfillment requests for one pickup.
// Each request is built independently, from the most explicit shape to the most
// minimal, following fulfillment.CascadeOrder.
type FulfillmentPlanner struct {
	message string
}

func NewFulfillmentPlanner(message string) FulfillmentPlanner {
	return FulfillmentPlanner{message: message}
}

func (p FulfillmentPlanner) Plan(partition Partition, location kernel.LocationID) ([]fulfillment.Request, error) {
	if len(partition.AutoFulfillable) == 0 {
		return nil, ErrNothingToFulfill
	}

	items := partition.FulfillmentLineItems()
	plan := make([]fulfillment.Request, 0, len(fulfillment.CascadeOrder))
	for _, strategy := range fulfillment.CascadeOrder {
		req, err := fulfillment.NewRequest(strategy, items, location, p.message)
		if err != nil {
			return nil, err
		}
		plan = append(plan, req)
	}
	return plan, nil
}

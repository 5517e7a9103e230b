package services

import (
	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/order"
)

// Partition is the result of splitting an order's eligible line items.
// No item appears in both subsets.
type Partition struct {
	// AutoFulfillable items are sent to the fulfillment endpoint.
	AutoFulfillable []order.LineItem
	// Manual items are handled out of band and only logged.
	Manual []order.LineItem
}

// IsEmpty reports whether the order has no eligible items at all.
func (p Partition) IsEmpty() bool {
	return len(p.AutoFulfillable) == 0 && len(p.Manual) == 0
}

// FulfillmentLineItems converts the auto-fulfillable subset into request line
// items, each with its full fulfillable quantity.
func (p Partition) FulfillmentLineItems() []fulfillment.LineItem {
	items := make([]fulfillment.LineItem, 0, len(p.AutoFulfillable))
	for _, li := range p.AutoFulfillable {
		items = append(items, fulfillment.LineItem{ID: li.ID(), Quantity: li.FulfillableQuantity()})
	}
	return items
}

// ManualTitles lists the titles of the manual subset, for logging.
func (p Partition) ManualTitles() []string {
	titles := make([]string, 0, len(p.Manual))
	for _, li := range p.Manual {
		titles = append(titles, li.Title())
	}
	return titles
}

// LineItemPartitioner splits the unfulfilled items of an order. An item is
// eligible when it is unfulfilled and has a positive fulfillable quantity;
// eligible items handled by the manual fulfillment service go to Manual.
type LineItemPartitioner struct{}

func NewLineItemPartitioner() LineItemPartitioner {
	return LineItemPartitioner{}
}

func (LineItemPartitioner) Partition(o *order.Order) Partition {
	var p Partition
	for _, li := range o.LineItems() {
		if !li.IsEligible() {
			continue
		}
		if li.IsManual() {
			p.Manual = append(p.Manual, li)
			continue
		}
		p.AutoFulfillable = append(p.AutoFulfillable, li)
	}
	return p
}

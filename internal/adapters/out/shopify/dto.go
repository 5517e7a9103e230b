package shopify

import (
	"errors"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
)

type orderEnvelope struct {
	Order orderDTO `json:"order"`
}

type orderDTO struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	FinancialStatus   string            `json:"financial_status"`
	FulfillmentStatus *string           `json:"fulfillment_status"`
	LineItems         []lineItemDTO     `json:"line_items"`
	ShippingLines     []shippingLineDTO `json:"shipping_lines"`
	LocationID        *int64            `json:"location_id"`
}

type lineItemDTO struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Quantity            int     `json:"quantity"`
	FulfillableQuantity int     `json:"fulfillable_quantity"`
	FulfillmentStatus   *string `json:"fulfillment_status"`
	FulfillmentService  string  `json:"fulfillment_service"`
}

type shippingLineDTO struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}

type locationsEnvelope struct {
	Locations []locationDTO `json:"locations"`
}

type locationDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type fulfillmentEnvelope struct {
	Fulfillment fulfillmentDTO `json:"fulfillment"`
}

// fulfillmentDTO omits every field a strategy does not send. NotifyCustomer is
// always present.
type fulfillmentDTO struct {
	LocationID     *int64               `json:"location_id,omitempty"`
	LineItems      []fulfillmentLineDTO `json:"line_items,omitempty"`
	NotifyCustomer bool                 `json:"notify_customer"`
	Message        string               `json:"message,omitempty"`
}

type fulfillmentLineDTO struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type receiptEnvelope struct {
	Fulfillment struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	} `json:"fulfillment"`
}

func toDomainOrder(id kernel.OrderID, dto orderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.LineItems))
	var itemErrs []error
	for _, li := range dto.LineItems {
		item, err := order.NewLineItem(
			li.ID,
			li.Title,
			li.Quantity,
			li.FulfillableQuantity,
			order.ParseFulfillmentStatus(li.FulfillmentStatus),
			li.FulfillmentService,
		)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	shipping := make([]order.ShippingLine, 0, len(dto.ShippingLines))
	for _, sl := range dto.ShippingLines {
		shipping = append(shipping, order.NewShippingLine(sl.Title, sl.Code))
	}

	var location *kernel.LocationID
	if dto.LocationID != nil && *dto.LocationID > 0 {
		loc, err := kernel.NewLocationID(*dto.LocationID)
		if err != nil {
			return nil, err
		}
		location = &loc
	}

	return order.NewOrder(
		id,
		dto.Name,
		order.ParseFinancialStatus(dto.FinancialStatus),
		order.ParseFulfillmentStatus(dto.FulfillmentStatus),
		items,
		shipping,
		location,
	)
}

func fromDomainRequest(req fulfillment.Request) fulfillmentEnvelope {
	dto := fulfillmentDTO{
		NotifyCustomer: req.NotifyCustomer(),
		Message:        req.Message(),
	}

	if loc, ok := req.Location(); ok {
		id := loc.Int64()
		dto.LocationID = &id
	}

	for _, li := range req.LineItems() {
		dto.LineItems = append(dto.LineItems, fulfillmentLineDTO{ID: li.ID, Quantity: li.Quantity})
	}

	return fulfillmentEnvelope{Fulfillment: dto}
}

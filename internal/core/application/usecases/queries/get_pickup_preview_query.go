package queries

import (
	"errors"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrGetPickupPreviewQueryIsNotConstructed = errors.New(
	"GetPickupPreviewQuery must be created via NewGetPickupPreviewQuery constructor",
)

// GetPickupPreviewQuery checks whether a confirmation link may be used, without
// confirming anything.
//
// Example:
//
//	query, err := NewGetPickupPreviewQuery(orderID, token)
//	preview, err := handler.Handle(ctx, query)
//	if preview.Status == pickup.Ready {
//	    // render the confirmation button
//	}
type GetPickupPreviewQuery struct {
	orderID kernel.OrderID
	token   string

	guard guard.ConstructorGuard
}

func NewGetPickupPreviewQuery(orderID, token string) (GetPickupPreviewQuery, error) {
	id, idErr := kernel.NewOrderID(orderID)

	token = strings.TrimSpace(token)
	var tokenErr error
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}

	if err := errors.Join(idErr, tokenErr); err != nil {
		return GetPickupPreviewQuery{}, err
	}

	return GetPickupPreviewQuery{
		orderID: id,
		token:   token,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetPickupPreviewQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q GetPickupPreviewQuery) Token() string {
	return q.token
}

func (q GetPickupPreviewQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupPreviewQueryIsNotConstructed)
}

// GetPickupPreviewQueryResponse is Ready when the link can be confirmed;
// any other status explains why not.
type GetPickupPreviewQueryResponse struct {
	Status pickup.Status

	// OrderID and Token echo the validated input so the page can post them back.
	OrderID string
	Token   string

	// OrderName is the shopper-facing order name, set once the order was fetched.
	OrderName string
}

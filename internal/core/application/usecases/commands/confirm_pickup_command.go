package commands

import (
	"errors"
	"strings"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand asks to confirm the pickup of one order with the token
// presented in the confirmation link.
//
// Example:
//
//	cmd, err := NewConfirmPickupCommand("1001", token)
//	if err != nil {
//	    // missing or malformed order id or token
//	}
//	result, err := handler.Handle(ctx, cmd)
type ConfirmPickupCommand struct {
	orderID kernel.OrderID
	token   string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand requires both values; the order id must be numeric.
func NewConfirmPickupCommand(orderID, token string) (ConfirmPickupCommand, error) {
	id, idErr := kernel.NewOrderID(orderID)

	token = strings.TrimSpace(token)
	var tokenErr error
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}

	if err := errors.Join(idErr, tokenErr); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		orderID: id,
		token:   token,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPickupCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c ConfirmPickupCommand) Token() string {
	return c.token
}

func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

package kernel

import (
	"fmt"
	"strings"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed indicates a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order id must be created via NewOrderID")

// OrderID identifies an order in the upstream order-management system.
// Upstream identifiers are unsigned decimal integers; OrderID keeps their
// canonical string form because that form is what pickup tokens are derived from.
//
// Example:
//
//	id, err := kernel.NewOrderID(" 1001 ")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // "1001"
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID trims surrounding whitespace and requires a non-empty string of ASCII digits.
func NewOrderID(raw string) (OrderID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
				"order id",
				fmt.Errorf("%q must contain digits only", value),
			)
		}
	}

	return OrderID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewOrderID is NewOrderID for literals known to be valid; it panics otherwise.
func MustNewOrderID(raw string) OrderID {
	id, err := NewOrderID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (o OrderID) String() string {
	return o.value
}

func (o OrderID) IsEqual(other OrderID) bool {
	return o.value == other.value
}

func (o OrderID) Validate() error {
	return o.guard.Validate(ErrOrderIDIsNotConstructed)
}

package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

// ErrLocationIDIsNotConstructed indicates a zero-value LocationID.
var ErrLocationIDIsNotConstructed = errs.NewValueIsRequiredError(
	"location id must be created via NewLocationID or ParseLocationID")

// LocationID identifies a physical fulfillment location (a store or a warehouse)
// in the upstream order-management system.
type LocationID struct { //nolint:recvcheck //using for validation
	value int64
	guard guard.ConstructorGuard
}

// NewLocationID requires a positive identifier.
func NewLocationID(value int64) (LocationID, error) {
	if value <= 0 {
		return LocationID{}, errs.NewValueIsInvalidErrorWithCause(
			"location id",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return LocationID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseLocationID parses a decimal location identifier, as found in configuration.
func ParseLocationID(raw string) (LocationID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return LocationID{}, errs.NewValueIsRequiredError("location id")
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return LocationID{}, errs.NewValueIsInvalidErrorWithCause("location id", err)
	}
	return NewLocationID(value)
}

// MustNewLocationID is NewLocationID for literals known to be valid; it panics otherwise.
func MustNewLocationID(value int64) LocationID {
	id, err := NewLocationID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (l LocationID) Int64() int64 {
	return l.value
}

func (l LocationID) String() string {
	return strconv.FormatInt(l.value, 10)
}

func (l LocationID) IsEqual(other LocationID) bool {
	return l.value == other.value
}

func (l LocationID) Validate() error {
	return l.guard.Validate(ErrLocationIDIsNotConstructed)
}

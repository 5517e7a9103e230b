// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero-value instances can be told apart from
// ones built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was created by its
// constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrConfirmPickupCommandIsNotConstructed = errors.New(
//	    "ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
//	)
//
//	type ConfirmPickupCommand struct {
//	    orderID kernel.OrderID
//	    token   string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ConfirmPickupCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

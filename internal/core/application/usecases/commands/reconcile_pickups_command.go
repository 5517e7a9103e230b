package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrReconcilePickupsCommandIsNotConstructed = errors.New(
	"ReconcilePickupsCommand must be created via NewReconcilePickupsCommand constructor",
)

// ReconcilePickupsCommand triggers a reconciliation pass over ambiguous pickup
// outcomes. It is parameterless and issued by the scheduler.
type ReconcilePickupsCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcilePickupsCommand() ReconcilePickupsCommand {
	return ReconcilePickupsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReconcilePickupsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePickupsCommandIsNotConstructed)
}

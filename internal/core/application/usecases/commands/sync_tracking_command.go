package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSyncTrackingCommandIsNotConstructed = errors.New(
	"SyncTrackingCommand must be created via NewSyncTrackingCommand constructor",
)

// SyncTrackingCommand polls carriers for every shipped package and records deliveries.
type SyncTrackingCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncTrackingCommand creates a parameterless SyncTrackingCommand.
func NewSyncTrackingCommand() SyncTrackingCommand {
	return SyncTrackingCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SyncTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSyncTrackingCommandIsNotConstructed)
}

// SyncTrackingResult counts what one synchronization run did.
type SyncTrackingResult struct {
	Checked   int
	Delivered int
	Failed    int
}

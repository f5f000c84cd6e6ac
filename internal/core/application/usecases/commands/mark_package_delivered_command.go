package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkPackageDeliveredCommandIsNotConstructed = errors.New(
	"MarkPackageDeliveredCommand must be created via NewMarkPackageDeliveredCommand constructor",
)

// MarkPackageDeliveredCommand confirms delivery. A zero deliveredAt means "now".
type MarkPackageDeliveredCommand struct {
	packageID   kernel.UUID
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewMarkPackageDeliveredCommand creates a MarkPackageDeliveredCommand.
func NewMarkPackageDeliveredCommand(packageID kernel.UUID, deliveredAt time.Time) (MarkPackageDeliveredCommand, error) {
	if err := packageID.Validate(); err != nil {
		return MarkPackageDeliveredCommand{}, err
	}

	return MarkPackageDeliveredCommand{
		packageID:   packageID,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPackageDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageDeliveredCommandIsNotConstructed)
}

func (c MarkPackageDeliveredCommand) PackageID() kernel.UUID { return c.packageID }
func (c MarkPackageDeliveredCommand) DeliveredAt() time.Time { return c.deliveredAt }

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGenerateLabelCommandIsNotConstructed = errors.New(
	"GenerateLabelCommand must be created via NewGenerateLabelCommand constructor",
)

// GenerateLabelCommand asks the package's carrier for a shipping label.
type GenerateLabelCommand struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateLabelCommand creates a GenerateLabelCommand.
func NewGenerateLabelCommand(packageID kernel.UUID) (GenerateLabelCommand, error) {
	if err := packageID.Validate(); err != nil {
		return GenerateLabelCommand{}, err
	}

	return GenerateLabelCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateLabelCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelCommandIsNotConstructed)
}

func (c GenerateLabelCommand) PackageID() kernel.UUID { return c.packageID }

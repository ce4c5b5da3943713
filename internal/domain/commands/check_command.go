package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// Check is the interface for the standalone environment check command.
type Check interface {
	Execute(ctx context.Context, config entities.RunConfig) ([]entities.StepResult, error)
}

// CheckCommand runs the environment validation on its own, without
// scaffolding anything.
type CheckCommand struct {
	environment repositories.EnvironmentRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(environment repositories.EnvironmentRepository) *CheckCommand {
	return &CheckCommand{environment: environment}
}

// Execute runs every precondition check and returns the per-check results.
// The error is non-nil exactly when a check failed.
func (it *CheckCommand) Execute(
	ctx context.Context,
	config entities.RunConfig,
) ([]entities.StepResult, error) {
	if config.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	return it.environment.Validate(ctx, config)
}

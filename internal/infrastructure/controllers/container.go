package controllers

import (
	"go.uber.org/dig"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewRunController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewTemplatesController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	runController *RunController,
	checkController *CheckController,
	templatesController *TemplatesController,
) *[]entities.Controller {
	return &[]entities.Controller{
		runController,
		checkController,
		templatesController,
	}
}

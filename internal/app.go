package internal

import (
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// AppInternal is the application context holding every registered controller.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	if it.controllers == nil {
		return nil
	}
	return *it.controllers
}

//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// StubEnvironmentRepository implements repositories.EnvironmentRepository
// with preconfigured results.
type StubEnvironmentRepository struct {
	Results []entities.StepResult
	Err     error

	// spy: calls received
	ValidateCallCount int
	LastConfig        entities.RunConfig
}

var _ repositories.EnvironmentRepository = (*StubEnvironmentRepository)(nil)

func (e *StubEnvironmentRepository) Validate(
	_ context.Context,
	config entities.RunConfig,
) ([]entities.StepResult, error) {
	e.ValidateCallCount++
	e.LastConfig = config
	return e.Results, e.Err
}

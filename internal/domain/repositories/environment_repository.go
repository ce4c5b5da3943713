package repositories

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// EnvironmentRepository verifies the preconditions of a scaffold run
// without mutating any project state.
type EnvironmentRepository interface {
	// Validate runs the precondition checks in a fixed order, stopping at
	// the first failure. The returned results cover every executed check;
	// the error is non-nil, wrapping entities.ErrPreconditionFailed, when
	// and only when a check failed.
	Validate(ctx context.Context, config entities.RunConfig) ([]entities.StepResult, error)
}

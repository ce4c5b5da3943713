package repositories

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// ScaffoldRepository materializes the project skeleton on disk.
type ScaffoldRepository interface {
	// EnsureLayout creates the directory tree under root. Directories that
	// already exist are not an error.
	EnsureLayout(ctx context.Context, root string, dirs []string) entities.StepResult

	// Materialize writes each template under root, honoring its overwrite
	// policy. A failed entry never aborts the remaining entries; the
	// returned results follow the entry order.
	Materialize(ctx context.Context, root string, entries []entities.TemplateEntry) []entities.StepResult
}

package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// FilesystemScaffoldRepository implements repositories.ScaffoldRepository
// against the local filesystem.
type FilesystemScaffoldRepository struct{}

// NewFilesystemScaffoldRepository creates a filesystem-backed scaffolder.
func NewFilesystemScaffoldRepository() repositories.ScaffoldRepository {
	return &FilesystemScaffoldRepository{}
}

// EnsureLayout creates the target directory and the project subdirectories.
// Existing directories are left untouched, so re-running is safe.
func (s *FilesystemScaffoldRepository) EnsureLayout(
	_ context.Context,
	root string,
	dirs []string,
) entities.StepResult {
	if err := os.MkdirAll(root, dirMode); err != nil {
		return entities.NewFailedResult(
			entities.StepLayout,
			fmt.Errorf("failed to create target directory %q: %w", root, err),
		)
	}

	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		if err := os.MkdirAll(path, dirMode); err != nil {
			return entities.NewFailedResult(
				entities.StepLayout,
				fmt.Errorf("failed to create directory %q: %w", dir, err),
			)
		}
		logger.Debugf("[scaffold] ensured directory %s", path)
	}

	return entities.NewSuccessResult(
		entities.StepLayout,
		fmt.Sprintf("%d directories ensured", len(dirs)),
	)
}

// Materialize writes every template to disk, one result per template.
// A failing template never stops the remaining ones.
func (s *FilesystemScaffoldRepository) Materialize(
	_ context.Context,
	root string,
	entries []entities.TemplateEntry,
) []entities.StepResult {
	results := make([]entities.StepResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, s.materializeEntry(root, entry))
	}
	return results
}

func (s *FilesystemScaffoldRepository) materializeEntry(
	root string,
	entry entities.TemplateEntry,
) entities.StepResult {
	step := entities.ScaffoldStepName(entry.Name)
	target := filepath.Join(root, entry.RelativePath)

	if entry.Overwrite == entities.SkipIfExists {
		if _, err := os.Stat(target); err == nil {
			logger.Debugf("[scaffold] skipped %s: already exists", target)
			return entities.NewSkippedResult(
				step,
				fmt.Sprintf("%s already exists", entry.RelativePath),
			)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return entities.NewFailedResult(step, fmt.Errorf(
			"%w: %s: %w", entities.ErrTemplateWrite, entry.RelativePath, err,
		))
	}

	if err := os.WriteFile(target, entry.Payload, fileMode); err != nil {
		return entities.NewFailedResult(step, fmt.Errorf(
			"%w: %s: %w", entities.ErrTemplateWrite, entry.RelativePath, err,
		))
	}

	logger.Debugf("[scaffold] wrote %s (%d bytes)", target, len(entry.Payload))
	return entities.NewSuccessResult(
		step,
		fmt.Sprintf("%s (%d bytes)", entry.RelativePath, len(entry.Payload)),
	)
}

//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// SpyScaffoldRepository implements repositories.ScaffoldRepository as a
// configurable spy. Without configured results it reports success for the
// layout and for every template.
type SpyScaffoldRepository struct {
	// --- EnsureLayout ---
	LayoutResult entities.StepResult
	// spy: roots and directory lists received
	LayoutRoots []string
	LayoutDirs  [][]string

	// --- Materialize ---
	MaterializeResults []entities.StepResult
	// spy: roots and entries received
	MaterializeRoots    []string
	MaterializedEntries [][]entities.TemplateEntry
}

var _ repositories.ScaffoldRepository = (*SpyScaffoldRepository)(nil)

func (s *SpyScaffoldRepository) EnsureLayout(
	_ context.Context,
	root string,
	dirs []string,
) entities.StepResult {
	s.LayoutRoots = append(s.LayoutRoots, root)
	s.LayoutDirs = append(s.LayoutDirs, dirs)

	if s.LayoutResult.Step != "" {
		return s.LayoutResult
	}
	return entities.NewSuccessResult(entities.StepLayout, "spy layout")
}

func (s *SpyScaffoldRepository) Materialize(
	_ context.Context,
	root string,
	entries []entities.TemplateEntry,
) []entities.StepResult {
	s.MaterializeRoots = append(s.MaterializeRoots, root)
	s.MaterializedEntries = append(s.MaterializedEntries, entries)

	if s.MaterializeResults != nil {
		return s.MaterializeResults
	}

	results := make([]entities.StepResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, entities.NewSuccessResult(
			entities.ScaffoldStepName(entry.Name), "spy write",
		))
	}
	return results
}

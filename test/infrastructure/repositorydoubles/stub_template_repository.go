//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// StubTemplateRepository implements repositories.TemplateRepository with a
// fixed set of entries.
type StubTemplateRepository struct {
	Entries []entities.TemplateEntry
	Dirs    []string

	// ResolveErr overrides the lookup result when set.
	ResolveErr error
}

var _ repositories.TemplateRepository = (*StubTemplateRepository)(nil)

func (t *StubTemplateRepository) Resolve(name string) (entities.TemplateEntry, error) {
	if t.ResolveErr != nil {
		return entities.TemplateEntry{}, t.ResolveErr
	}
	for _, entry := range t.Entries {
		if entry.Name == name {
			return entry, nil
		}
	}
	return entities.TemplateEntry{}, fmt.Errorf("%w: %q", entities.ErrUnknownTemplate, name)
}

func (t *StubTemplateRepository) All() []entities.TemplateEntry {
	return t.Entries
}

func (t *StubTemplateRepository) Directories() []string {
	return t.Dirs
}

//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/commands"
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	Results []entities.StepResult
	Err     error

	// spy: calls received
	ExecuteCallCount int
	LastConfig       entities.RunConfig
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(
	_ context.Context,
	config entities.RunConfig,
) ([]entities.StepResult, error) {
	s.ExecuteCallCount++
	s.LastConfig = config
	return s.Results, s.Err
}

// StubTemplatesCommand is a stub implementation of commands.Templates.
type StubTemplatesCommand struct {
	Dirs    []string
	Entries []entities.TemplateEntry

	// spy: calls received
	ExecuteCallCount int
}

var _ commands.Templates = (*StubTemplatesCommand)(nil)

func (s *StubTemplatesCommand) Execute() ([]string, []entities.TemplateEntry) {
	s.ExecuteCallCount++
	return s.Dirs, s.Entries
}

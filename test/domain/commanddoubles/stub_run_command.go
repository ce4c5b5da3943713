//go:build integration || unit || test

// Package commanddoubles provides test doubles for the domain command
// interfaces consumed by the controllers.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/commands"
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// StubRunCommand is a stub implementation of commands.Run.
type StubRunCommand struct {
	Report *entities.RunReport

	// spy: calls received
	ExecuteCallCount int
	LastConfig       entities.RunConfig
}

var _ commands.Run = (*StubRunCommand)(nil)

func (s *StubRunCommand) Execute(
	_ context.Context,
	config entities.RunConfig,
) *entities.RunReport {
	s.ExecuteCallCount++
	s.LastConfig = config

	if s.Report != nil {
		return s.Report
	}

	report := entities.NewRunReport()
	report.Finalize()
	return report
}

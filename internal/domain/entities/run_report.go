package entities

import (
	"time"

	"github.com/google/uuid"
)

// RunReport aggregates the ordered step results of one scaffold run. It is
// owned by the run command and finalized exactly once; rendering is left
// to the CLI layer.
type RunReport struct {
	RunID      string
	Results    []StepResult
	Overall    Outcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRunReport starts an empty report for a new run.
func NewRunReport() *RunReport {
	return &RunReport{
		RunID:     uuid.NewString(),
		Overall:   OutcomeSuccess,
		StartedAt: time.Now().UTC(),
	}
}

// Append records step results in execution order. A single failed step
// makes the overall outcome Failed; skipped steps never do.
func (it *RunReport) Append(results ...StepResult) {
	for _, result := range results {
		it.Results = append(it.Results, result)
		if result.Outcome == OutcomeFailed {
			it.Overall = OutcomeFailed
		}
	}
}

// Finalize stamps the end of the run.
func (it *RunReport) Finalize() {
	it.FinishedAt = time.Now().UTC()
}

// Failed reports whether any recorded step failed.
func (it *RunReport) Failed() bool {
	return it.Overall == OutcomeFailed
}

// FailedSteps returns the number of failed steps.
func (it *RunReport) FailedSteps() int {
	count := 0
	for _, result := range it.Results {
		if result.Outcome == OutcomeFailed {
			count++
		}
	}
	return count
}

// Duration returns the total wall time of the run.
func (it *RunReport) Duration() time.Duration {
	return it.FinishedAt.Sub(it.StartedAt)
}

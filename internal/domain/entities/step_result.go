package entities

import "time"

// Outcome classifies what happened to a single pipeline step.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Step names recorded in run reports, in pipeline order. Scaffold steps
// are derived per template via ScaffoldStepName.
const (
	StepValidate = "validate"
	StepLayout   = "layout"
	StepInit     = "git:init"
	StepIdentity = "git:identity"
	StepStage    = "git:stage"
	StepCommit   = "git:commit"
	StepRemote   = "git:remote"
	StepPublish  = "git:publish"
)

// DetailDryRun is the detail recorded for steps short-circuited by dry-run mode.
const DetailDryRun = "dry-run"

// StepResult records the outcome of one pipeline step. Results are
// append-only and never mutated after creation.
type StepResult struct {
	Step      string
	Outcome   Outcome
	Detail    string
	Timestamp time.Time
}

// ScaffoldStepName returns the report step name for a single template.
func ScaffoldStepName(template string) string {
	return "scaffold:" + template
}

// NewSuccessResult records a step that completed its work.
func NewSuccessResult(step, detail string) StepResult {
	return StepResult{
		Step:      step,
		Outcome:   OutcomeSuccess,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// NewSkippedResult records a step that intentionally did nothing.
func NewSkippedResult(step, detail string) StepResult {
	return StepResult{
		Step:      step,
		Outcome:   OutcomeSkipped,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// NewFailedResult records a failed step, carrying the error text as detail.
func NewFailedResult(step string, err error) StepResult {
	return StepResult{
		Step:      step,
		Outcome:   OutcomeFailed,
		Detail:    err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// defaultCommitMessage is used when no message is supplied via flag or
// config file. It matches the first commit the platform ships with.
const defaultCommitMessage = "🚀 Initial commit: Enhanced MLOps Platform v3.0 with Model Versioning"

// Run is the interface for the run command (scaffold and publish).
type Run interface {
	Execute(ctx context.Context, config entities.RunConfig) *entities.RunReport
}

// RunCommand orchestrates the full scaffold flow:
// validate environment -> materialize project files -> initialize and publish the git repository.
type RunCommand struct {
	templates   repositories.TemplateRepository
	scaffolder  repositories.ScaffoldRepository
	environment repositories.EnvironmentRepository
	git         repositories.GitRepository
}

// NewRunCommand creates a new RunCommand with the given repositories.
func NewRunCommand(
	templates repositories.TemplateRepository,
	scaffolder repositories.ScaffoldRepository,
	environment repositories.EnvironmentRepository,
	git repositories.GitRepository,
) *RunCommand {
	return &RunCommand{
		templates:   templates,
		scaffolder:  scaffolder,
		environment: environment,
		git:         git,
	}
}

// Execute runs validation, scaffolding and the git pipeline and returns the
// finalized report. Validation failures abort everything; scaffold failures
// are recorded per file and the git pipeline still runs; a git failure
// aborts the remaining git steps only.
func (it *RunCommand) Execute(ctx context.Context, config entities.RunConfig) *entities.RunReport {
	if config.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	report := entities.NewRunReport()

	checkResults, err := it.environment.Validate(ctx, config)
	if err != nil {
		report.Append(entities.NewFailedResult(entities.StepValidate, err))
		report.Finalize()
		return report
	}

	if config.DryRun {
		it.appendDryRunResults(report)
		report.Finalize()
		logger.Infof("Dry run complete: %d steps planned, nothing touched", len(report.Results))
		return report
	}

	report.Append(entities.NewSuccessResult(
		entities.StepValidate,
		fmt.Sprintf("%d checks passed", len(checkResults)),
	))

	report.Append(it.scaffolder.EnsureLayout(ctx, config.TargetDir, it.templates.Directories()))
	report.Append(it.scaffolder.Materialize(ctx, config.TargetDir, it.templates.All())...)

	it.runGitSteps(ctx, report, config)

	report.Finalize()
	logger.Infof("Run complete: %d steps, %d failed", len(report.Results), report.FailedSteps())
	return report
}

// appendDryRunResults records every planned step as skipped. Validation has
// already passed at this point; the dry run proves the plan without
// touching the filesystem or git.
func (it *RunCommand) appendDryRunResults(report *entities.RunReport) {
	steps := []string{entities.StepValidate, entities.StepLayout}
	for _, entry := range it.templates.All() {
		steps = append(steps, entities.ScaffoldStepName(entry.Name))
	}
	steps = append(steps,
		entities.StepInit,
		entities.StepIdentity,
		entities.StepStage,
		entities.StepCommit,
		entities.StepRemote,
		entities.StepPublish,
	)

	for _, step := range steps {
		report.Append(entities.NewSkippedResult(step, entities.DetailDryRun))
	}
}

// runGitSteps drives the git pipeline in order, stopping at the first
// failed step. Skipped steps (existing identity, clean tree, matching
// remote) do not stop the pipeline.
func (it *RunCommand) runGitSteps(
	ctx context.Context,
	report *entities.RunReport,
	config entities.RunConfig,
) {
	result, err := it.git.EnsureRepository(ctx, config.TargetDir)
	report.Append(result)
	if err != nil {
		return
	}

	if config.SkipIdentity {
		report.Append(entities.NewSkippedResult(entities.StepIdentity, "using existing git identity"))
	} else {
		result, err = it.git.ConfigureIdentity(ctx, config.TargetDir, config.Author)
		report.Append(result)
		if err != nil {
			return
		}
	}

	result, err = it.git.StageAll(ctx, config.TargetDir)
	report.Append(result)
	if err != nil {
		return
	}

	result, err = it.git.Commit(ctx, config.TargetDir, it.commitMessage(config))
	report.Append(result)
	if err != nil {
		return
	}

	result, err = it.git.RegisterRemote(ctx, config.TargetDir, config.ResolvedRemoteURL())
	report.Append(result)
	if err != nil {
		return
	}

	result, _ = it.git.Publish(ctx, config.TargetDir, config.Branch)
	report.Append(result)
}

func (it *RunCommand) commitMessage(config entities.RunConfig) string {
	if config.Message != "" {
		return config.Message
	}
	return defaultCommitMessage
}

//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable
// spy. Calls records the step order; each operation synthesizes a success
// result unless the test configured a result or an error for it.
type SpyGitRepository struct {
	// --- call order ---
	Calls []string

	// --- EnsureRepository ---
	InitResult entities.StepResult
	InitErr    error
	// spy: roots received
	InitRoots []string

	// --- ConfigureIdentity ---
	IdentityResult entities.StepResult
	IdentityErr    error
	// spy: identities received
	Identities []entities.AuthorIdentity

	// --- StageAll ---
	StageResult entities.StepResult
	StageErr    error

	// --- Commit ---
	CommitResult entities.StepResult
	CommitErr    error
	// spy: messages received
	Messages []string

	// --- RegisterRemote ---
	RemoteResult entities.StepResult
	RemoteErr    error
	// spy: URLs received
	RemoteURLs []string

	// --- Publish ---
	PublishResult entities.StepResult
	PublishErr    error
	// spy: branches received
	Branches []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (g *SpyGitRepository) EnsureRepository(
	_ context.Context,
	root string,
) (entities.StepResult, error) {
	g.Calls = append(g.Calls, entities.StepInit)
	g.InitRoots = append(g.InitRoots, root)
	return resultFor(g.InitResult, entities.StepInit, g.InitErr), g.InitErr
}

func (g *SpyGitRepository) ConfigureIdentity(
	_ context.Context,
	_ string,
	author entities.AuthorIdentity,
) (entities.StepResult, error) {
	g.Calls = append(g.Calls, entities.StepIdentity)
	g.Identities = append(g.Identities, author)
	return resultFor(g.IdentityResult, entities.StepIdentity, g.IdentityErr), g.IdentityErr
}

func (g *SpyGitRepository) StageAll(
	_ context.Context,
	_ string,
) (entities.StepResult, error) {
	g.Calls = append(g.Calls, entities.StepStage)
	return resultFor(g.StageResult, entities.StepStage, g.StageErr), g.StageErr
}

func (g *SpyGitRepository) Commit(
	_ context.Context,
	_ string,
	message string,
) (entities.StepResult, error) {
	g.Calls = append(g.Calls, entities.StepCommit)
	g.Messages = append(g.Messages, message)
	return resultFor(g.CommitResult, entities.StepCommit, g.CommitErr), g.CommitErr
}

func (g *SpyGitRepository) RegisterRemote(
	_ context.Context,
	_ string,
	remoteURL string,
) (entities.StepResult, error) {
	g.Calls = append(g.Calls, entities.StepRemote)
	g.RemoteURLs = append(g.RemoteURLs, remoteURL)
	return resultFor(g.RemoteResult, entities.StepRemote, g.RemoteErr), g.RemoteErr
}

func (g *SpyGitRepository) Publish(
	_ context.Context,
	_ string,
	branch string,
) (entities.StepResult, error) {
	g.Calls = append(g.Calls, entities.StepPublish)
	g.Branches = append(g.Branches, branch)
	return resultFor(g.PublishResult, entities.StepPublish, g.PublishErr), g.PublishErr
}

// resultFor keeps the spy consistent with the repository contract: a
// configured result wins, otherwise the result follows the configured error.
func resultFor(configured entities.StepResult, step string, err error) entities.StepResult {
	if configured.Step != "" {
		return configured
	}
	if err != nil {
		return entities.NewFailedResult(step, err)
	}
	return entities.NewSuccessResult(step, "spy ok")
}

package repositories

import (
	"context"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// GitRepository drives the local git repository used to publish the
// scaffold. Every operation returns the step result to report plus a
// non-nil error when, and only when, the step failed; callers use the
// error to abort the remaining git steps. No operation rolls back the
// state an earlier operation established.
type GitRepository interface {
	// EnsureRepository initializes a repository at root only if none exists there.
	EnsureRepository(ctx context.Context, root string) (entities.StepResult, error)

	// ConfigureIdentity sets the repository-local commit authorship.
	ConfigureIdentity(ctx context.Context, root string, author entities.AuthorIdentity) (entities.StepResult, error)

	// StageAll stages every tracked and untracked file under root.
	StageAll(ctx context.Context, root string) (entities.StepResult, error)

	// Commit creates a commit. A clean working tree is reported as
	// skipped, not failed, so re-running an unchanged scaffold stays green.
	Commit(ctx context.Context, root, message string) (entities.StepResult, error)

	// RegisterRemote points origin at url: it adds the remote when
	// missing, updates it when the configured URL differs, and skips
	// when it already matches.
	RegisterRemote(ctx context.Context, root, url string) (entities.StepResult, error)

	// Publish ensures the primary branch name and pushes it with
	// upstream tracking. A failure leaves all local state in place.
	Publish(ctx context.Context, root, branch string) (entities.StepResult, error)
}

package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

const (
	commandTimeout = 60 * time.Second
	originRemote   = "origin"
)

// GitCliRepository implements repositories.GitRepository by shelling out to
// the system git binary. Existing repository and remote state is inspected
// through go-git before each mutating command, so skip decisions rest on
// typed errors instead of parsed command output.
type GitCliRepository struct {
	gitPath string
}

// NewGitCliRepository creates a git-backed VCS driver. When no git binary is
// available the instance is still returned and every operation fails with
// entities.ErrVcsUnavailable rather than panicking at construction.
func NewGitCliRepository() repositories.GitRepository {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		logger.Warnf("[git] git binary not found in PATH: %v", err)
		return &GitCliRepository{gitPath: ""}
	}
	return &GitCliRepository{gitPath: gitPath}
}

// EnsureRepository initializes a repository at root, skipping when one is
// already there.
func (g *GitCliRepository) EnsureRepository(
	ctx context.Context,
	root string,
) (entities.StepResult, error) {
	if g.gitPath == "" {
		return g.unavailable(entities.StepInit)
	}

	_, err := git.PlainOpen(root)
	switch {
	case err == nil:
		return entities.NewSkippedResult(entities.StepInit, "repository already initialized"), nil
	case errors.Is(err, git.ErrRepositoryNotExists):
		if _, runErr := g.run(ctx, root, "init"); runErr != nil {
			return failStep(entities.StepInit, fmt.Errorf("failed to initialize repository: %w", runErr))
		}
		return entities.NewSuccessResult(entities.StepInit, "initialized empty repository"), nil
	default:
		return failStep(entities.StepInit, fmt.Errorf("failed to inspect repository: %w", err))
	}
}

// ConfigureIdentity sets the repository-local author name and email.
func (g *GitCliRepository) ConfigureIdentity(
	ctx context.Context,
	root string,
	author entities.AuthorIdentity,
) (entities.StepResult, error) {
	if g.gitPath == "" {
		return g.unavailable(entities.StepIdentity)
	}

	if author.Name == "" || author.Email == "" {
		err := fmt.Errorf("%w: name %q, email %q", entities.ErrInvalidIdentity, author.Name, author.Email)
		return failStep(entities.StepIdentity, err)
	}

	if _, err := g.run(ctx, root, "config", "user.name", author.Name); err != nil {
		return failStep(entities.StepIdentity, fmt.Errorf("failed to set user.name: %w", err))
	}
	if _, err := g.run(ctx, root, "config", "user.email", author.Email); err != nil {
		return failStep(entities.StepIdentity, fmt.Errorf("failed to set user.email: %w", err))
	}

	return entities.NewSuccessResult(
		entities.StepIdentity,
		fmt.Sprintf("%s <%s>", author.Name, author.Email),
	), nil
}

// StageAll stages every change in the working tree, deletions included.
func (g *GitCliRepository) StageAll(
	ctx context.Context,
	root string,
) (entities.StepResult, error) {
	if g.gitPath == "" {
		return g.unavailable(entities.StepStage)
	}

	if _, err := g.run(ctx, root, "add", "-A"); err != nil {
		return failStep(entities.StepStage, fmt.Errorf("failed to stage changes: %w", err))
	}

	return entities.NewSuccessResult(entities.StepStage, "all changes staged"), nil
}

// Commit records the staged changes, skipping when the working tree is
// already clean.
func (g *GitCliRepository) Commit(
	ctx context.Context,
	root string,
	message string,
) (entities.StepResult, error) {
	if g.gitPath == "" {
		return g.unavailable(entities.StepCommit)
	}

	status, err := g.run(ctx, root, "status", "--porcelain")
	if err != nil {
		return failStep(entities.StepCommit, fmt.Errorf("failed to read working tree status: %w", err))
	}
	if status == "" {
		return entities.NewSkippedResult(entities.StepCommit, "working tree clean, nothing to commit"), nil
	}

	if _, err = g.run(ctx, root, "commit", "-m", message); err != nil {
		return failStep(entities.StepCommit, fmt.Errorf("failed to commit: %w", err))
	}

	hash, err := g.run(ctx, root, "rev-parse", "--short", "HEAD")
	if err != nil {
		// The commit itself succeeded, only the hash lookup failed.
		return entities.NewSuccessResult(entities.StepCommit, "committed"), nil
	}

	return entities.NewSuccessResult(entities.StepCommit, "committed "+hash), nil
}

// RegisterRemote points "origin" at remoteURL, skipping when it already
// does and rewriting it when it points elsewhere.
func (g *GitCliRepository) RegisterRemote(
	ctx context.Context,
	root string,
	remoteURL string,
) (entities.StepResult, error) {
	if g.gitPath == "" {
		return g.unavailable(entities.StepRemote)
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return failStep(entities.StepRemote, fmt.Errorf("failed to inspect repository: %w", err))
	}

	remote, err := repo.Remote(originRemote)
	switch {
	case err == nil:
		urls := remote.Config().URLs
		if len(urls) > 0 && urls[0] == remoteURL {
			return entities.NewSkippedResult(
				entities.StepRemote,
				fmt.Sprintf("origin already set to %s", remoteURL),
			), nil
		}
		if _, runErr := g.run(ctx, root, "remote", "set-url", originRemote, remoteURL); runErr != nil {
			return failStep(entities.StepRemote, fmt.Errorf("failed to update remote: %w", runErr))
		}
		return entities.NewSuccessResult(
			entities.StepRemote,
			fmt.Sprintf("origin updated to %s", remoteURL),
		), nil
	case errors.Is(err, git.ErrRemoteNotFound):
		if _, runErr := g.run(ctx, root, "remote", "add", originRemote, remoteURL); runErr != nil {
			return failStep(entities.StepRemote, fmt.Errorf("failed to add remote: %w", runErr))
		}
		return entities.NewSuccessResult(
			entities.StepRemote,
			fmt.Sprintf("origin set to %s", remoteURL),
		), nil
	default:
		return failStep(entities.StepRemote, fmt.Errorf("failed to read remote configuration: %w", err))
	}
}

// Publish renames the current branch and pushes it upstream. Failures leave
// the local repository fully usable, which is why both are wrapped in
// entities.ErrPublishFailed.
func (g *GitCliRepository) Publish(
	ctx context.Context,
	root string,
	branch string,
) (entities.StepResult, error) {
	if g.gitPath == "" {
		return g.unavailable(entities.StepPublish)
	}

	if _, err := g.run(ctx, root, "branch", "-M", branch); err != nil {
		return failStep(entities.StepPublish, fmt.Errorf(
			"%w: failed to rename branch to %q: %w", entities.ErrPublishFailed, branch, err,
		))
	}

	if _, err := g.run(ctx, root, "push", "-u", originRemote, branch); err != nil {
		return failStep(entities.StepPublish, fmt.Errorf("%w: %w", entities.ErrPublishFailed, err))
	}

	return entities.NewSuccessResult(
		entities.StepPublish,
		fmt.Sprintf("pushed %s to origin", branch),
	), nil
}

// run executes a git command rooted at the given directory and returns its
// trimmed combined output. Command output is folded into the error so
// failures stay diagnosable without a verbose flag.
func (g *GitCliRepository) run(ctx context.Context, root string, args ...string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, g.gitPath, append([]string{"-C", root}, args...)...)
	output, err := cmd.CombinedOutput()
	outputStr := strings.TrimSpace(string(output))
	logger.Debugf("[git] git %s:\n%s", strings.Join(args, " "), outputStr)

	if err != nil {
		if outputStr != "" {
			return outputStr, fmt.Errorf("git %s: %w: %s", args[0], err, outputStr)
		}
		return outputStr, fmt.Errorf("git %s: %w", args[0], err)
	}

	return outputStr, nil
}

func (g *GitCliRepository) unavailable(step string) (entities.StepResult, error) {
	err := fmt.Errorf("%w: git binary not found in PATH", entities.ErrVcsUnavailable)
	return entities.NewFailedResult(step, err), err
}

func failStep(step string, err error) (entities.StepResult, error) {
	return entities.NewFailedResult(step, err), err
}

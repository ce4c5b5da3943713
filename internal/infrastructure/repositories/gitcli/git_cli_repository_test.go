//go:build unit

package gitcli_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/infrastructure/repositories/gitcli"
)

//nolint:tparallel // some subtests clear PATH via t.Setenv which is incompatible with t.Parallel
func TestGitCliRepositoryGuards(t *testing.T) {
	t.Run("should fail every operation when git is missing", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("PATH", "")
		driver := gitcli.NewGitCliRepository()
		root := t.TempDir()
		ctx := context.Background()
		author := entities.AuthorIdentity{Name: "asarekings", Email: "asarekings@example.com"}

		// when / then
		result, err := driver.EnsureRepository(ctx, root)
		require.ErrorIs(t, err, entities.ErrVcsUnavailable)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)
		assert.Equal(t, entities.StepInit, result.Step)

		result, err = driver.ConfigureIdentity(ctx, root, author)
		require.ErrorIs(t, err, entities.ErrVcsUnavailable)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)

		result, err = driver.StageAll(ctx, root)
		require.ErrorIs(t, err, entities.ErrVcsUnavailable)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)

		result, err = driver.Commit(ctx, root, "message")
		require.ErrorIs(t, err, entities.ErrVcsUnavailable)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)

		result, err = driver.RegisterRemote(ctx, root, "https://github.com/asarekings/mlops-platform.git")
		require.ErrorIs(t, err, entities.ErrVcsUnavailable)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)

		result, err = driver.Publish(ctx, root, "main")
		require.ErrorIs(t, err, entities.ErrVcsUnavailable)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)
		assert.Equal(t, entities.StepPublish, result.Step)
	})

	t.Run("should reject an empty author identity", func(t *testing.T) {
		t.Parallel()
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git binary not installed")
		}

		// given
		driver := gitcli.NewGitCliRepository()

		// when
		result, err := driver.ConfigureIdentity(
			context.Background(), t.TempDir(), entities.AuthorIdentity{},
		)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidIdentity)
		assert.Equal(t, entities.OutcomeFailed, result.Outcome)
		assert.Equal(t, entities.StepIdentity, result.Step)
	})
}

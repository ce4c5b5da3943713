//go:build unit

package controllers_test

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/infrastructure/controllers"
	"github.com/asarekings/mlops-platform/test/domain/commanddoubles"
)

func newCheckHarness(stub *commanddoubles.StubCheckCommand) (*controllers.CheckController, *cobra.Command) {
	controller := controllers.NewCheckController(stub)

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "check"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().Bool("verbose", false, "")
	controller.AddFlags(cmd)

	return controller, cmd
}

//nolint:tparallel // subtests use t.Chdir and t.Setenv which are incompatible with t.Parallel
func TestCheckControllerExecute(t *testing.T) {
	t.Run("should succeed when every check passes", func(t *testing.T) {
		// given
		isolateConfigLookup(t)
		stub := &commanddoubles.StubCheckCommand{
			Results: []entities.StepResult{
				entities.NewSuccessResult("check:git-binary", "git found"),
				entities.NewSuccessResult("check:target-writable", "writable"),
			},
		}
		controller, cmd := newCheckHarness(stub)

		// when
		err := controller.Execute(cmd, []string{"some-dir"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "some-dir", stub.LastConfig.TargetDir)
	})

	t.Run("should report a not ready environment", func(t *testing.T) {
		// given
		isolateConfigLookup(t)
		stub := &commanddoubles.StubCheckCommand{
			Results: []entities.StepResult{
				entities.NewFailedResult("check:git-binary", errors.New("git not found")),
			},
			Err: entities.ErrPreconditionFailed,
		}
		controller, cmd := newCheckHarness(stub)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorContains(t, err, "environment not ready")
		require.ErrorIs(t, err, entities.ErrPreconditionFailed)
	})

	t.Run("should always probe for real even under dry-run", func(t *testing.T) {
		// given
		isolateConfigLookup(t)
		stub := &commanddoubles.StubCheckCommand{}
		controller, cmd := newCheckHarness(stub)
		require.NoError(t, cmd.Flags().Set("dry-run", "true"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.False(t, stub.LastConfig.DryRun)
	})
}

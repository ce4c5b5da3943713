package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asarekings/mlops-platform/internal/domain/commands"
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// CheckController handles the "check" subcommand (environment validation only).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [target-dir]",
		Short: "Validate the environment without scaffolding anything",
		Long: `Run the same environment checks a full run starts with: git binary,
target directory writability, remote URL shape and author email. No
project files are written and no git state is changed.`,
	}
}

// Execute runs the environment checks and prints one line per check.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runConfig := resolveRunConfig(cmd, args, settings)
	// The standalone check always probes for real, even under --dry-run:
	// the probe file is removed before the command returns.
	runConfig.DryRun = false

	results, checkErr := it.command.Execute(ctx, runConfig)

	fmt.Println("🔍 Environment checks")
	for _, result := range results {
		fmt.Printf("  %s %-22s %s\n", outcomeIcon(result.Outcome), result.Step, result.Detail)
	}

	if checkErr != nil {
		return fmt.Errorf("environment not ready: %w", checkErr)
	}

	fmt.Println("✅ Environment ready")
	return nil
}

// AddFlags adds the check-specific flags to the given Cobra command.
// The check reuses the run flags so both commands validate the same inputs.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("account", "", "GitHub account owning the repository")
	cmd.Flags().String("repo", "", "Repository name on GitHub")
	cmd.Flags().String("remote", "", "Full remote URL (overrides --account/--repo)")
	cmd.Flags().String("branch", "", "Branch to publish (default from config, usually main)")
	cmd.Flags().String("name", "", "Commit author name")
	cmd.Flags().String("email", "", "Commit author email")
	cmd.Flags().String("message", "", "Commit message for the initial commit")
	cmd.Flags().Bool("skip-identity", false, "Keep the existing git identity untouched")
}

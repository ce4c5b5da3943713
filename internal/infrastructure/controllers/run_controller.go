package controllers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/asarekings/mlops-platform/config"
	"github.com/asarekings/mlops-platform/internal/domain/commands"
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// RunController handles the "run" subcommand (scaffold and publish).
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run [target-dir]",
		Short: "Scaffold the MLOps platform and publish it to GitHub",
		Long: `Scaffold the complete MLOps platform project and publish it.

The run validates the environment first, then writes the project files
into the target directory, initializes a git repository, commits and
pushes to the configured remote. Re-running against an existing project
is safe: steps whose work is already done are skipped.`,
	}
}

// Execute runs the scaffold pipeline and prints the step summary. It
// returns a non-nil error when any step failed, so the process exits
// non-zero.
func (it *RunController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runConfig := resolveRunConfig(cmd, args, settings)

	if runConfig.Author.Email == "" && !runConfig.SkipIdentity &&
		term.IsTerminal(int(os.Stdin.Fd())) {
		email, promptErr := promptForEmail(os.Stdin, os.Stdout)
		if promptErr == nil {
			runConfig.Author.Email = email
		}
	}

	fmt.Printf("🚀 %s v%s\n", settings.Project.Name, settings.Project.Version)
	fmt.Printf("👤 Author: %s\n", runConfig.Account)
	fmt.Printf("📅 %s UTC\n", time.Now().UTC().Format("2006-01-02 15:04:05"))
	fmt.Printf("📁 Target: %s\n", runConfig.TargetDir)
	if runConfig.DryRun {
		fmt.Println("🔎 Dry run: no files or git state will be touched")
	}

	report := it.command.Execute(ctx, runConfig)
	renderReport(os.Stdout, report)

	if report.Failed() {
		return fmt.Errorf("%d of %d steps failed", report.FailedSteps(), len(report.Results))
	}
	return nil
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("account", "", "GitHub account owning the repository")
	cmd.Flags().String("repo", "", "Repository name on GitHub")
	cmd.Flags().String("remote", "", "Full remote URL (overrides --account/--repo)")
	cmd.Flags().String("branch", "", "Branch to publish (default from config, usually main)")
	cmd.Flags().String("name", "", "Commit author name")
	cmd.Flags().String("email", "", "Commit author email")
	cmd.Flags().String("message", "", "Commit message for the initial commit")
	cmd.Flags().Bool("skip-identity", false, "Keep the existing git identity untouched")
}

// loadSettings resolves the configuration: an explicit --config path wins,
// then the first discovered config file, then the built-in defaults.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		return config.Load(configPath)
	}

	found, err := config.FindConfigFile()
	if err != nil {
		logger.Debugf("no config file found, using built-in defaults")
		return config.Default(), nil
	}

	logger.Infof("Using config file: %s", found)
	return config.Load(found)
}

// resolveRunConfig merges CLI flags over file settings. Flags always win;
// the target directory defaults to the repository name.
func resolveRunConfig(
	cmd *cobra.Command,
	args []string,
	settings *config.Config,
) entities.RunConfig {
	account, _ := cmd.Flags().GetString("account")
	repository, _ := cmd.Flags().GetString("repo")
	remoteURL, _ := cmd.Flags().GetString("remote")
	branch, _ := cmd.Flags().GetString("branch")
	authorName, _ := cmd.Flags().GetString("name")
	authorEmail, _ := cmd.Flags().GetString("email")
	message, _ := cmd.Flags().GetString("message")
	skipIdentity, _ := cmd.Flags().GetBool("skip-identity")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if account == "" {
		account = settings.Remote.Account
	}
	if repository == "" {
		repository = settings.Remote.Repository
	}
	if remoteURL == "" {
		remoteURL = settings.Remote.URL
	}
	if branch == "" {
		branch = settings.Remote.Branch
	}
	if authorName == "" {
		authorName = settings.Author.Name
	}
	if authorName == "" {
		authorName = account
	}
	if authorEmail == "" {
		authorEmail = settings.Author.Email
	}

	targetDir := repository
	if len(args) > 0 {
		targetDir = args[0]
	}

	return entities.RunConfig{
		TargetDir:    targetDir,
		Account:      account,
		Repository:   repository,
		RemoteURL:    remoteURL,
		Branch:       branch,
		Author:       entities.AuthorIdentity{Name: authorName, Email: authorEmail},
		Message:      message,
		SkipIdentity: skipIdentity,
		DryRun:       dryRun,
		Verbose:      verbose,
	}
}

// promptForEmail asks for the commit email interactively. Only called when
// stdin is a terminal.
func promptForEmail(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "📧 Enter your GitHub email address: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read email: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// renderReport prints the human-readable step summary.
func renderReport(out io.Writer, report *entities.RunReport) {
	fmt.Fprintf(out, "\n📋 Run %s\n", report.RunID)
	for _, result := range report.Results {
		fmt.Fprintf(out, "  %s %-22s %s\n", outcomeIcon(result.Outcome), result.Step, result.Detail)
	}
	fmt.Fprintf(out, "\nOverall: %s %s in %s\n",
		outcomeIcon(report.Overall),
		report.Overall,
		report.Duration().Round(time.Millisecond),
	)
}

func outcomeIcon(outcome entities.Outcome) string {
	switch outcome {
	case entities.OutcomeSuccess:
		return "✅"
	case entities.OutcomeSkipped:
		return "⏭️"
	case entities.OutcomeFailed:
		return "❌"
	default:
		return "❓"
	}
}

package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/asarekings/mlops-platform/internal"
	"github.com/asarekings/mlops-platform/internal/infrastructure/controllers"
)

func buildRootCommand(runController *controllers.RunController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "scaffold [target-dir]",
		Short: "Scaffold and publish the MLOps platform project",
		Long: `Provision the complete MLOps platform project: write the project
files, initialize a git repository, commit and push to GitHub.

Usage modes:
  scaffold                  Show this help
  scaffold my-platform      Scaffold into ./my-platform and publish
  scaffold run              Same as the positional form, with all flags
  scaffold check            Validate the environment without writing anything
  scaffold templates        List the files and directories a run creates`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return runController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	// The positional form takes the same flags as the run subcommand
	runController.AddFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		switch flagged := ctrl.(type) {
		case *controllers.RunController:
			flagged.AddFlags(subCmd)
		case *controllers.CheckController:
			flagged.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	runController := injectRunController()
	cobraRoot := buildRootCommand(runController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'scaffold': %s", err)
	}
}

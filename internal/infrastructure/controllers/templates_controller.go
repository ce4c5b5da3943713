package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asarekings/mlops-platform/internal/domain/commands"
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// TemplatesController handles the "templates" subcommand.
type TemplatesController struct {
	command commands.Templates
}

// NewTemplatesController creates a new TemplatesController.
func NewTemplatesController(command commands.Templates) *TemplatesController {
	return &TemplatesController{command: command}
}

// GetBind returns the Cobra command metadata for the templates controller.
func (it *TemplatesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "templates",
		Short: "List the project files and directories a run creates",
	}
}

// Execute prints the directory layout and every template in emission order.
func (it *TemplatesController) Execute(_ *cobra.Command, _ []string) error {
	directories, entries := it.command.Execute()

	fmt.Println("📋 Directory layout")
	for _, dir := range directories {
		fmt.Printf("  %s/\n", dir)
	}

	fmt.Println("\n📋 Templates")
	for _, entry := range entries {
		fmt.Printf("  %-14s %-32s [%s, %d bytes]\n",
			entry.Name, entry.RelativePath, entry.Overwrite, len(entry.Payload))
	}

	return nil
}

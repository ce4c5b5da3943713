package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra command metadata for a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller binds a domain command to a CLI subcommand. Execute returns a
// non-nil error when the process must exit with a non-zero code.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

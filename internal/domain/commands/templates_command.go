package commands

import (
	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

// Templates is the interface for the template listing command.
type Templates interface {
	Execute() ([]string, []entities.TemplateEntry)
}

// TemplatesCommand lists the directory layout and the registered templates.
type TemplatesCommand struct {
	templates repositories.TemplateRepository
}

// NewTemplatesCommand creates a new TemplatesCommand.
func NewTemplatesCommand(templates repositories.TemplateRepository) *TemplatesCommand {
	return &TemplatesCommand{templates: templates}
}

// Execute returns the directory layout and every template in emission order.
func (it *TemplatesCommand) Execute() ([]string, []entities.TemplateEntry) {
	return it.templates.Directories(), it.templates.All()
}

package repositories

import (
	"go.uber.org/dig"

	"github.com/asarekings/mlops-platform/internal/infrastructure/repositories/environment"
	"github.com/asarekings/mlops-platform/internal/infrastructure/repositories/gitcli"
	"github.com/asarekings/mlops-platform/internal/infrastructure/repositories/scaffold"
	"github.com/asarekings/mlops-platform/internal/infrastructure/repositories/templates"
)

// RegisterProviders registers all repository implementations with the DIG
// container. Every constructor already returns its domain interface, so no
// extra binding functions are needed here.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		templates.NewTemplateRegistry,
		scaffold.NewFilesystemScaffoldRepository,
		environment.NewEnvironmentCheckRepository,
		gitcli.NewGitCliRepository,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}

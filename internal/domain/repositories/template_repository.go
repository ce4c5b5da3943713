package repositories

import (
	"github.com/asarekings/mlops-platform/internal/domain/entities"
)

// TemplateRepository holds the fixed set of project artifacts. It is
// populated once at startup and read-only afterwards.
type TemplateRepository interface {
	// Resolve returns the template registered under the given name, or an
	// error wrapping entities.ErrUnknownTemplate when it was never registered.
	Resolve(name string) (entities.TemplateEntry, error)

	// All returns every template in registration order. The order is
	// deterministic so repeated runs create files in the same sequence.
	All() []entities.TemplateEntry

	// Directories returns the project directory tree in creation order.
	Directories() []string
}

package templates

import (
	"embed"
	"fmt"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

//go:embed payloads
var payloadFS embed.FS

// payloadSpec binds an embedded asset to its destination inside the generated project.
type payloadSpec struct {
	name   string
	asset  string
	path   string
	policy entities.OverwritePolicy
}

// payloadTable lists every artifact in emission order. All() preserves this
// order verbatim, so the run summary is stable across runs.
var payloadTable = []payloadSpec{
	{name: "readme", asset: "readme.md", path: "README.md", policy: entities.OverwriteAlways},
	{name: "requirements", asset: "requirements.txt", path: "requirements.txt", policy: entities.OverwriteAlways},
	{name: "gitignore", asset: "gitignore", path: ".gitignore", policy: entities.OverwriteAlways},
	{name: "ci-workflow", asset: "ci.yml", path: ".github/workflows/ci.yml", policy: entities.OverwriteAlways},
	{name: "dockerfile", asset: "dockerfile", path: "deployment/Dockerfile", policy: entities.OverwriteAlways},
	{name: "compose", asset: "docker-compose.yml", path: "deployment/docker-compose.yml", policy: entities.OverwriteAlways},
	{name: "website", asset: "index.html", path: "docs/index.html", policy: entities.OverwriteAlways},
	{name: "test-stub", asset: "test_api.py", path: "tests/test_api.py", policy: entities.SkipIfExists},
	{name: "setup-script", asset: "setup.py", path: "scripts/setup.py", policy: entities.SkipIfExists},
	{name: "license", asset: "license", path: "LICENSE", policy: entities.OverwriteAlways},
}

// layoutDirectories lists the project directories in creation order. Some of
// them only receive files later in the project's life (monitoring, templates),
// but the layout ships with all of them present.
var layoutDirectories = []string{
	".github/workflows",
	"docs",
	"deployment",
	"tests",
	"scripts",
	"monitoring",
	"templates",
}

// TemplateRegistry implements repositories.TemplateRepository backed by
// assets compiled into the binary.
type TemplateRegistry struct {
	entries []entities.TemplateEntry
	index   map[string]entities.TemplateEntry
}

// NewTemplateRegistry loads every embedded artifact into an immutable registry.
func NewTemplateRegistry() (repositories.TemplateRepository, error) {
	entries := make([]entities.TemplateEntry, 0, len(payloadTable))
	index := make(map[string]entities.TemplateEntry, len(payloadTable))

	for _, spec := range payloadTable {
		payload, err := payloadFS.ReadFile("payloads/" + spec.asset)
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded template %q: %w", spec.name, err)
		}

		entry := entities.TemplateEntry{
			Name:         spec.name,
			RelativePath: spec.path,
			Payload:      payload,
			Overwrite:    spec.policy,
		}
		entries = append(entries, entry)
		index[spec.name] = entry
	}

	return &TemplateRegistry{entries: entries, index: index}, nil
}

// Resolve returns the template registered under the given name.
func (r *TemplateRegistry) Resolve(name string) (entities.TemplateEntry, error) {
	entry, ok := r.index[name]
	if !ok {
		return entities.TemplateEntry{}, fmt.Errorf("%w: %q", entities.ErrUnknownTemplate, name)
	}
	return entry, nil
}

// All returns every template in emission order.
func (r *TemplateRegistry) All() []entities.TemplateEntry {
	out := make([]entities.TemplateEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Directories returns the project directory layout in creation order.
func (r *TemplateRegistry) Directories() []string {
	out := make([]string, len(layoutDirectories))
	copy(out, layoutDirectories)
	return out
}

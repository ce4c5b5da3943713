//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/asarekings/mlops-platform/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RunConfigBuilder helps create test run configurations with a fluent interface.
type RunConfigBuilder struct {
	*testkit.BaseBuilder
	targetDir    string
	account      string
	repository   string
	remoteURL    string
	branch       string
	authorName   string
	authorEmail  string
	message      string
	skipIdentity bool
	dryRun       bool
}

// NewRunConfigBuilder creates a new run config builder with sensible defaults.
func NewRunConfigBuilder() *RunConfigBuilder {
	return &RunConfigBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		targetDir:   "mlops-platform",
		account:     "asarekings",
		repository:  "mlops-platform",
		branch:      "main",
		authorName:  "asarekings",
		authorEmail: "asarekings@example.com",
	}
}

// WithTargetDir sets the target directory.
func (b *RunConfigBuilder) WithTargetDir(dir string) *RunConfigBuilder {
	b.targetDir = dir
	return b
}

// WithAccount sets the hosting account.
func (b *RunConfigBuilder) WithAccount(account string) *RunConfigBuilder {
	b.account = account
	return b
}

// WithRepository sets the repository name.
func (b *RunConfigBuilder) WithRepository(repository string) *RunConfigBuilder {
	b.repository = repository
	return b
}

// WithRemoteURL sets the full remote URL.
func (b *RunConfigBuilder) WithRemoteURL(url string) *RunConfigBuilder {
	b.remoteURL = url
	return b
}

// WithBranch sets the branch to publish.
func (b *RunConfigBuilder) WithBranch(branch string) *RunConfigBuilder {
	b.branch = branch
	return b
}

// WithAuthor sets the commit author identity.
func (b *RunConfigBuilder) WithAuthor(name, email string) *RunConfigBuilder {
	b.authorName = name
	b.authorEmail = email
	return b
}

// WithMessage sets the commit message.
func (b *RunConfigBuilder) WithMessage(message string) *RunConfigBuilder {
	b.message = message
	return b
}

// WithSkipIdentity leaves the existing git identity untouched.
func (b *RunConfigBuilder) WithSkipIdentity(skip bool) *RunConfigBuilder {
	b.skipIdentity = skip
	return b
}

// WithDryRun toggles dry-run mode.
func (b *RunConfigBuilder) WithDryRun(dryRun bool) *RunConfigBuilder {
	b.dryRun = dryRun
	return b
}

// Build creates the run config (satisfies testkit.Builder interface).
func (b *RunConfigBuilder) Build() interface{} {
	return b.BuildRunConfig()
}

// BuildRunConfig creates the run config with a concrete return type.
func (b *RunConfigBuilder) BuildRunConfig() entities.RunConfig {
	return entities.RunConfig{
		TargetDir:  b.targetDir,
		Account:    b.account,
		Repository: b.repository,
		RemoteURL:  b.remoteURL,
		Branch:     b.branch,
		Author: entities.AuthorIdentity{
			Name:  b.authorName,
			Email: b.authorEmail,
		},
		Message:      b.message,
		SkipIdentity: b.skipIdentity,
		DryRun:       b.dryRun,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RunConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.targetDir = "mlops-platform"
	b.account = "asarekings"
	b.repository = "mlops-platform"
	b.remoteURL = ""
	b.branch = "main"
	b.authorName = "asarekings"
	b.authorEmail = "asarekings@example.com"
	b.message = ""
	b.skipIdentity = false
	b.dryRun = false
	return b
}

// Clone creates a deep copy of the RunConfigBuilder.
func (b *RunConfigBuilder) Clone() testkit.Builder {
	return &RunConfigBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		targetDir:    b.targetDir,
		account:      b.account,
		repository:   b.repository,
		remoteURL:    b.remoteURL,
		branch:       b.branch,
		authorName:   b.authorName,
		authorEmail:  b.authorEmail,
		message:      b.message,
		skipIdentity: b.skipIdentity,
		dryRun:       b.dryRun,
	}
}

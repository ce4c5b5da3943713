package environment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/asarekings/mlops-platform/internal/domain/entities"
	"github.com/asarekings/mlops-platform/internal/domain/repositories"
)

const (
	gitBinaryCheck      = "git-binary"
	targetWritableCheck = "target-writable"
	remoteURLCheck      = "remote-url"
	authorEmailCheck    = "author-email"
)

// scpLikePattern matches scp-style remote addresses such as
// git@github.com:user/repo.git, which url.Parse does not understand.
var scpLikePattern = regexp.MustCompile(`^[\w.+-]+@[\w.-]+:[\w./~+-]+$`)

// environmentCheck is one named precondition probe.
type environmentCheck struct {
	name string
	run  func(config entities.RunConfig) (string, error)
}

// EnvironmentCheckRepository implements repositories.EnvironmentRepository
// by probing the local machine.
type EnvironmentCheckRepository struct{}

// NewEnvironmentCheckRepository creates an environment validator.
func NewEnvironmentCheckRepository() repositories.EnvironmentRepository {
	return &EnvironmentCheckRepository{}
}

// Validate runs every precondition check in a fixed order and stops at the
// first failure. The returned results carry one entry per executed check;
// the error is non-nil exactly when a check failed.
func (e *EnvironmentCheckRepository) Validate(
	_ context.Context,
	config entities.RunConfig,
) ([]entities.StepResult, error) {
	checks := []environmentCheck{
		{name: gitBinaryCheck, run: e.checkGitBinary},
		{name: targetWritableCheck, run: e.checkTargetWritable},
		{name: remoteURLCheck, run: e.checkRemoteURL},
		{name: authorEmailCheck, run: e.checkAuthorEmail},
	}

	results := make([]entities.StepResult, 0, len(checks))
	for _, check := range checks {
		step := checkStepName(check.name)
		detail, err := check.run(config)
		if err != nil {
			failure := fmt.Errorf("%w: %s: %w", entities.ErrPreconditionFailed, check.name, err)
			results = append(results, entities.NewFailedResult(step, failure))
			return results, failure
		}

		logger.Debugf("[env] %s: %s", check.name, detail)
		results = append(results, entities.NewSuccessResult(step, detail))
	}

	return results, nil
}

func checkStepName(name string) string {
	return "check:" + name
}

func (e *EnvironmentCheckRepository) checkGitBinary(_ entities.RunConfig) (string, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("%w: git binary not found in PATH: %w", entities.ErrVcsUnavailable, err)
	}
	return path, nil
}

// checkTargetWritable probes the nearest existing ancestor of the target
// directory with a temporary file. The probe is removed immediately; in
// dry-run mode it is skipped entirely so the run touches nothing.
func (e *EnvironmentCheckRepository) checkTargetWritable(config entities.RunConfig) (string, error) {
	if info, err := os.Stat(config.TargetDir); err == nil && !info.IsDir() {
		return "", fmt.Errorf("target %q exists and is not a directory", config.TargetDir)
	}

	probeDir := nearestExistingDir(config.TargetDir)
	if config.DryRun {
		return fmt.Sprintf("%s (write probe skipped)", probeDir), nil
	}

	file, err := os.CreateTemp(probeDir, ".scaffold-probe-*")
	if err != nil {
		return "", fmt.Errorf("target %q is not writable: %w", config.TargetDir, err)
	}

	name := file.Name()
	_ = file.Close()
	_ = os.Remove(name)

	return fmt.Sprintf("%s is writable", probeDir), nil
}

func (e *EnvironmentCheckRepository) checkRemoteURL(config entities.RunConfig) (string, error) {
	remoteURL := config.ResolvedRemoteURL()
	if err := validateRemoteURL(remoteURL); err != nil {
		return "", err
	}
	return remoteURL, nil
}

func (e *EnvironmentCheckRepository) checkAuthorEmail(config entities.RunConfig) (string, error) {
	if config.SkipIdentity {
		return "using existing git identity", nil
	}
	if strings.TrimSpace(config.Author.Email) == "" {
		return "", errors.New("author email is empty: set --email or author.email in the config file")
	}
	return config.Author.Email, nil
}

// validateRemoteURL accepts http(s), ssh and git URLs plus scp-like
// addresses. Reachability is deliberately not checked here.
func validateRemoteURL(raw string) error {
	if raw == "" {
		return errors.New("no remote URL configured: set --remote or --account and --repo")
	}

	if scpLikePattern.MatchString(raw) {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed remote URL %q: %w", raw, err)
	}

	switch parsed.Scheme {
	case "http", "https", "ssh", "git":
	default:
		return fmt.Errorf("unsupported remote URL scheme %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("remote URL %q has no host", raw)
	}

	return nil
}

// nearestExistingDir walks up from path until it finds a directory that
// exists. It never returns an empty string: the walk stops at the
// filesystem root or at ".".
func nearestExistingDir(path string) string {
	current := filepath.Clean(path)
	for {
		info, err := os.Stat(current)
		if err == nil && info.IsDir() {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return current
		}
		current = parent
	}
}

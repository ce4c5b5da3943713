package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding setting is absent. They describe
// the project this tool provisions.
const (
	DefaultProjectName        = "MLOps Platform"
	DefaultProjectDescription = "Enhanced ML Model Deployment & Monitoring Platform with Model Versioning"
	DefaultProjectVersion     = "3.0.0"
	DefaultAccount            = "asarekings"
	DefaultRepository         = "mlops-platform"
	DefaultBranch             = "main"
)

// Config is the top-level configuration for scaffold.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Remote  RemoteConfig  `yaml:"remote"`
	Author  AuthorConfig  `yaml:"author"`
}

// ProjectConfig describes the project being scaffolded.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"` // semantic version, e.g. "3.0.0"
}

// RemoteConfig describes where the scaffolded repository is published.
type RemoteConfig struct {
	Account    string `yaml:"account"`    // hosting account, e.g. "asarekings"
	Repository string `yaml:"repository"` // repository name on the host
	URL        string `yaml:"url"`        // full remote URL; overrides account/repository
	Branch     string `yaml:"branch"`     // primary branch name
}

// AuthorConfig holds the commit identity. Values may reference
// environment variables as ${VAR_NAME}.
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variable references and applying the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	// Expand ${ENV_VAR} references in the values that commonly carry them
	cfg.Remote.URL = expandEnv(cfg.Remote.URL)
	cfg.Author.Name = expandEnv(cfg.Author.Name)
	cfg.Author.Email = expandEnv(cfg.Author.Email)

	applyDefaults(&cfg)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".scaffold.yaml",
		".scaffold.yml",
		"scaffold.yaml",
		"scaffold.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands environment variable references (${VAR}) in the given value.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// applyDefaults fills unset fields with the built-in project defaults.
func applyDefaults(cfg *Config) {
	if cfg.Project.Name == "" {
		cfg.Project.Name = DefaultProjectName
	}
	if cfg.Project.Description == "" {
		cfg.Project.Description = DefaultProjectDescription
	}
	if cfg.Project.Version == "" {
		cfg.Project.Version = DefaultProjectVersion
	}
	if cfg.Remote.Account == "" {
		cfg.Remote.Account = DefaultAccount
	}
	if cfg.Remote.Repository == "" {
		cfg.Remote.Repository = DefaultRepository
	}
	if cfg.Remote.Branch == "" {
		cfg.Remote.Branch = DefaultBranch
	}
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if !semver.IsValid("v" + cfg.Project.Version) {
		return fmt.Errorf("project.version %q is not a valid semantic version", cfg.Project.Version)
	}
	if strings.ContainsAny(cfg.Remote.Branch, " \t") {
		return fmt.Errorf("remote.branch %q must not contain whitespace", cfg.Remote.Branch)
	}
	return nil
}

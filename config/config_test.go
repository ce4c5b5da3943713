package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asarekings/mlops-platform/config"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestExpandEnv(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return plain value unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "asarekings@example.com"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Equal(t, "asarekings@example.com", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_SCAFFOLD_EMAIL", "dev@example.com")
		raw := "${TEST_SCAFFOLD_EMAIL}"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Equal(t, "dev@example.com", result)
	})

	t.Run("should expand env var embedded in string", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_SCAFFOLD_ACCOUNT", "asarekings")
		raw := "https://github.com/${TEST_SCAFFOLD_ACCOUNT}/mlops-platform.git"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Equal(t, "https://github.com/asarekings/mlops-platform.git", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_VAR_12345}"

		// when
		result := config.ExpandEnv(raw)

		// then
		assert.Empty(t, result)
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("should fill every field on an empty config", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{}

		// when
		config.ApplyDefaults(cfg)

		// then
		assert.Equal(t, config.DefaultProjectName, cfg.Project.Name)
		assert.Equal(t, config.DefaultProjectDescription, cfg.Project.Description)
		assert.Equal(t, config.DefaultProjectVersion, cfg.Project.Version)
		assert.Equal(t, config.DefaultAccount, cfg.Remote.Account)
		assert.Equal(t, config.DefaultRepository, cfg.Remote.Repository)
		assert.Equal(t, config.DefaultBranch, cfg.Remote.Branch)
	})

	t.Run("should keep explicit values", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := &config.Config{}
		cfg.Project.Name = "Custom Platform"
		cfg.Project.Version = "1.2.3"
		cfg.Remote.Account = "someone-else"
		cfg.Remote.Branch = "develop"

		// when
		config.ApplyDefaults(cfg)

		// then
		assert.Equal(t, "Custom Platform", cfg.Project.Name)
		assert.Equal(t, "1.2.3", cfg.Project.Version)
		assert.Equal(t, "someone-else", cfg.Remote.Account)
		assert.Equal(t, "develop", cfg.Remote.Branch)
		assert.Equal(t, config.DefaultRepository, cfg.Remote.Repository)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should fail when project version is not semver", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()
		cfg.Project.Version = "three-point-oh"

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid semantic version")
	})

	t.Run("should fail when branch contains whitespace", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()
		cfg.Remote.Branch = "main branch"

		// when
		err := config.Validate(cfg)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain whitespace")
	})

	t.Run("should pass with the built-in defaults", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()

		// when
		err := config.Validate(cfg)

		// then
		require.NoError(t, err)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should load valid config file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "scaffold.yaml")
		content := `
project:
  name: "My Platform"
  version: "2.1.0"
remote:
  account: "asarekings"
  repository: "my-platform"
  branch: "main"
author:
  name: "asarekings"
  email: "dev@example.com"
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "My Platform", cfg.Project.Name)
		assert.Equal(t, "2.1.0", cfg.Project.Version)
		assert.Equal(t, "asarekings", cfg.Remote.Account)
		assert.Equal(t, "my-platform", cfg.Remote.Repository)
		assert.Equal(t, "main", cfg.Remote.Branch)
		assert.Equal(t, "asarekings", cfg.Author.Name)
		assert.Equal(t, "dev@example.com", cfg.Author.Email)
	})

	t.Run("should apply defaults for missing fields", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "scaffold.yaml")
		content := `
author:
  email: "dev@example.com"
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, config.DefaultProjectName, cfg.Project.Name)
		assert.Equal(t, config.DefaultAccount, cfg.Remote.Account)
		assert.Equal(t, config.DefaultBranch, cfg.Remote.Branch)
		assert.Equal(t, "dev@example.com", cfg.Author.Email)
	})

	t.Run("should expand env vars in author email", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_SCAFFOLD_LOAD_EMAIL", "ci@example.com")
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "scaffold.yaml")
		content := `
author:
  email: "${TEST_SCAFFOLD_LOAD_EMAIL}"
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "ci@example.com", cfg.Author.Email)
	})

	t.Run("should fail when file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		missing := filepath.Join(t.TempDir(), "nope.yaml")

		// when
		_, err := config.Load(missing)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "scaffold.yaml")
		err := os.WriteFile(cfgFile, []byte("project: [unclosed"), 0o600)
		require.NoError(t, err)

		// when
		_, err = config.Load(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail when file carries an invalid version", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "scaffold.yaml")
		content := `
project:
  version: "not-a-version"
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		_, err = config.Load(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid semantic version")
	})
}

//nolint:tparallel // subtests change the working directory and HOME
func TestFindConfigFile(t *testing.T) {
	t.Run("should find config in current directory", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir() or t.Setenv()

		// given
		tmpDir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		err := os.WriteFile(filepath.Join(tmpDir, ".scaffold.yaml"), []byte("{}"), 0o600)
		require.NoError(t, err)
		chdir(t, tmpDir)

		// when
		found, err := config.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".scaffold.yaml", found)
	})

	t.Run("should error when no config file exists", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir() or t.Setenv()

		// given
		t.Setenv("HOME", t.TempDir())
		chdir(t, t.TempDir())

		// when
		_, err := config.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file not found")
	})
}

// chdir switches the working directory for the duration of the test. It
// stands in for testing.T.Chdir, which needs Go 1.24 while this module
// builds with Go 1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

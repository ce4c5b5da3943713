package config

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export

// ApplyDefaults exports applyDefaults for testing.
var ApplyDefaults = applyDefaults //nolint:gochecknoglobals // test export

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export

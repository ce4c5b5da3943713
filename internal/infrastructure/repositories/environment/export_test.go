package environment

// ValidateRemoteURL exports validateRemoteURL for testing.
var ValidateRemoteURL = validateRemoteURL //nolint:gochecknoglobals // test export

// NearestExistingDir exports nearestExistingDir for testing.
var NearestExistingDir = nearestExistingDir //nolint:gochecknoglobals // test export

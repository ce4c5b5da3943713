package entities

// OverwritePolicy decides what happens when a template's destination file
// already exists on disk.
type OverwritePolicy string

const (
	// OverwriteAlways replaces existing content unconditionally. Used for
	// generated files that are expected to be regenerated on every run.
	OverwriteAlways OverwritePolicy = "always"

	// SkipIfExists leaves an existing file untouched and reports the step
	// as skipped. Used for files the user is expected to edit.
	SkipIfExists OverwritePolicy = "skip-if-exists"
)

// TemplateEntry is one artifact of the fixed project skeleton: a named
// payload with a destination path relative to the target directory.
// The payload is immutable once loaded into the registry.
type TemplateEntry struct {
	Name         string
	RelativePath string // slash-separated, relative to the target directory
	Payload      []byte
	Overwrite    OverwritePolicy
}

package entities

import "errors"

// Sentinel errors for the scaffold pipeline. Steps wrap these with %w so
// callers can classify a failure with errors.Is without parsing text.
var (
	// ErrUnknownTemplate is returned when resolving a template name that was never registered.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrPreconditionFailed marks an environment check failure. It aborts the run before any mutation.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrTemplateWrite marks a failed template materialization. It affects that single file only.
	ErrTemplateWrite = errors.New("template write failed")

	// ErrVcsUnavailable indicates the git binary cannot be invoked at all.
	ErrVcsUnavailable = errors.New("git is not available")

	// ErrInvalidIdentity indicates the commit author identity cannot be configured.
	ErrInvalidIdentity = errors.New("invalid author identity")

	// ErrPublishFailed indicates the push to the remote failed. The local commit stays in place.
	ErrPublishFailed = errors.New("publish failed")
)

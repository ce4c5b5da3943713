package controllers

// PromptForEmail exports promptForEmail for testing.
var PromptForEmail = promptForEmail //nolint:gochecknoglobals // test export

// RenderReport exports renderReport for testing.
var RenderReport = renderReport //nolint:gochecknoglobals // test export

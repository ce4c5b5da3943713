package commands

// DefaultCommitMessage exports defaultCommitMessage for testing.
const DefaultCommitMessage = defaultCommitMessage

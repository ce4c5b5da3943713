package entities

import "fmt"

// AuthorIdentity is the commit identity configured into the scaffolded repository.
type AuthorIdentity struct {
	Name  string
	Email string
}

// RunConfig is the configuration of a single scaffold run, assembled once
// by the CLI layer from the settings file and flags. It is never mutated
// while the run is in progress.
type RunConfig struct {
	TargetDir    string
	Account      string
	Repository   string
	RemoteURL    string // optional; derived from Account/Repository when empty
	Branch       string
	Author       AuthorIdentity
	Message      string // commit message; empty selects the default
	SkipIdentity bool
	DryRun       bool
	Verbose      bool
}

// ResolvedRemoteURL returns the remote URL to register, deriving the HTTPS
// form from the account and repository name when no explicit URL is set.
func (it RunConfig) ResolvedRemoteURL() string {
	if it.RemoteURL != "" {
		return it.RemoteURL
	}
	if it.Account == "" || it.Repository == "" {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", it.Account, it.Repository)
}

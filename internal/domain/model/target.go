package model

import "strings"

// DefaultBranch is used when no branch has been configured.
const DefaultBranch = "main"

// RemoteTarget is the repository a push writes to.
type RemoteTarget struct {
	Credential   string
	RepositoryID string
	Branch       string
}

// Owner returns the owner half of "owner/name".
func (t RemoteTarget) Owner() string {
	owner, _, _ := strings.Cut(t.RepositoryID, "/")
	return owner
}

// Repo returns the name half of "owner/name".
func (t RemoteTarget) Repo() string {
	_, repo, _ := strings.Cut(t.RepositoryID, "/")
	return repo
}

// BranchOrDefault returns the configured branch or DefaultBranch.
func (t RemoteTarget) BranchOrDefault() string {
	if t.Branch == "" {
		return DefaultBranch
	}
	return t.Branch
}

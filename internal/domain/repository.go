package domain

import "time"

// DefaultBranch is the branch created alongside every new repository.
const DefaultBranch = "main"

// Repository is an owner-scoped container for one history and one working tree.
type Repository struct {
	ID            string
	OwnerID       string
	OwnerName     string
	Name          string
	DefaultBranch string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Branch is a movable named pointer to a commit. HeadCommitID is nil until
// the first commit lands on the branch.
type Branch struct {
	ID           string
	RepositoryID string
	Name         string
	HeadCommitID *string
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasHead reports whether the branch points at a commit.
func (b Branch) HasHead() bool {
	return b.HeadCommitID != nil && *b.HeadCommitID != ""
}

// Head returns the head commit id, or "" for a branch without commits.
func (b Branch) Head() string {
	if b.HeadCommitID == nil {
		return ""
	}
	return *b.HeadCommitID
}

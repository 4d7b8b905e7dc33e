package domain

import "time"

// ShortSHALength is the number of hex characters shown for abbreviated commit ids.
const ShortSHALength = 7

type Author struct {
	Name  string
	Email string
}

// Commit is an immutable history record. ParentID is nil for the first
// commit of a lineage; history never forks into a DAG.
type Commit struct {
	ID           string
	RepositoryID string
	BranchID     *string
	ParentID     *string
	SHA          string
	TreeHash     string
	Message      string
	Author       Author
	CreatedAt    time.Time
}

// ShortSHA returns the abbreviated commit hash.
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= ShortSHALength {
		return c.SHA
	}
	return c.SHA[:ShortSHALength]
}

// Parent returns the parent commit id, or "" for a root commit.
func (c Commit) Parent() string {
	if c.ParentID == nil {
		return ""
	}
	return *c.ParentID
}

// Snapshot is the frozen content of one file taken at commit time.
type Snapshot struct {
	ID           string
	RepositoryID string
	Path         string
	Content      string
	Checksum     string
	Size         int64
	CreatedAt    time.Time
}

// WorkingFile is one entry of the mutable working tree.
type WorkingFile struct {
	RepositoryID string
	Path         string
	Content      string
	Checksum     string
	UpdatedAt    time.Time
}

// CommitDetail is a commit together with the paths it captured.
type CommitDetail struct {
	Commit Commit
	Paths  []string
}

// CheckoutResult describes the working tree after a checkout.
type CheckoutResult struct {
	Branch       string
	HeadCommitID *string
	Files        int
	Removed      int64
}

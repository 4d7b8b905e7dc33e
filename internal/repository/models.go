package repository

import (
	"fmt"
	"time"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// Repository is the gorm row for a repository.
type Repository struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	OwnerID       string `gorm:"index"`
	OwnerName     string
	Name          string
	DefaultBranch string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Repository) TableName() string { return "repositories" }

type Branch struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	RepositoryID string
	Name         string
	HeadCommitID *string
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Branch) TableName() string { return "branches" }

type Commit struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	RepositoryID string
	BranchID     *string
	ParentID     *string
	SHA          string `gorm:"column:sha"`
	TreeHash     string
	Message      string
	AuthorName   string
	AuthorEmail  string
	CreatedAt    time.Time
}

func (Commit) TableName() string { return "commits" }

type Snapshot struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	RepositoryID string
	Path         string
	Content      string
	Checksum     string
	Size         int64
	CreatedAt    time.Time
}

func (Snapshot) TableName() string { return "snapshots" }

// CommitSnapshot joins a commit to the snapshots captured with it.
type CommitSnapshot struct {
	CommitID   string `gorm:"primaryKey"`
	SnapshotID string `gorm:"primaryKey"`
}

func (CommitSnapshot) TableName() string { return "commit_snapshots" }

type WorkingFile struct {
	RepositoryID string `gorm:"primaryKey"`
	Path         string `gorm:"primaryKey"`
	Content      string
	Checksum     string
	UpdatedAt    time.Time
}

func (WorkingFile) TableName() string { return "working_files" }

// Author is an aggregate row, not a table.
type Author struct {
	Name        string
	Email       string
	CommitCount int64
}

func malformed(entity, id string) error {
	return fmt.Errorf("%w: malformed %s row %q", errcodes.ErrInternal, entity, id)
}

func (r Repository) ToDomain() (*domain.Repository, error) {
	if r.ID == "" || r.OwnerID == "" || r.Name == "" {
		return nil, malformed("repository", r.ID)
	}
	return &domain.Repository{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		OwnerName:     r.OwnerName,
		Name:          r.Name,
		DefaultBranch: r.DefaultBranch,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

func ToGormRepo(r *domain.Repository) *Repository {
	return &Repository{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		OwnerName:     r.OwnerName,
		Name:          r.Name,
		DefaultBranch: r.DefaultBranch,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (b Branch) ToDomain() (*domain.Branch, error) {
	if b.ID == "" || b.RepositoryID == "" || b.Name == "" {
		return nil, malformed("branch", b.ID)
	}
	if b.HeadCommitID != nil && *b.HeadCommitID == "" {
		return nil, malformed("branch", b.ID)
	}
	return &domain.Branch{
		ID:           b.ID,
		RepositoryID: b.RepositoryID,
		Name:         b.Name,
		HeadCommitID: b.HeadCommitID,
		Version:      b.Version,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}, nil
}

func ToGormBranch(b *domain.Branch) *Branch {
	return &Branch{
		ID:           b.ID,
		RepositoryID: b.RepositoryID,
		Name:         b.Name,
		HeadCommitID: b.HeadCommitID,
		Version:      b.Version,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (c Commit) ToDomain() (*domain.Commit, error) {
	if c.ID == "" || c.RepositoryID == "" || c.SHA == "" {
		return nil, malformed("commit", c.ID)
	}
	return &domain.Commit{
		ID:           c.ID,
		RepositoryID: c.RepositoryID,
		BranchID:     c.BranchID,
		ParentID:     c.ParentID,
		SHA:          c.SHA,
		TreeHash:     c.TreeHash,
		Message:      c.Message,
		Author: domain.Author{
			Name:  c.AuthorName,
			Email: c.AuthorEmail,
		},
		CreatedAt: c.CreatedAt,
	}, nil
}

func ToGormCommit(c *domain.Commit) *Commit {
	return &Commit{
		ID:           c.ID,
		RepositoryID: c.RepositoryID,
		BranchID:     c.BranchID,
		ParentID:     c.ParentID,
		SHA:          c.SHA,
		TreeHash:     c.TreeHash,
		Message:      c.Message,
		AuthorName:   c.Author.Name,
		AuthorEmail:  c.Author.Email,
		CreatedAt:    c.CreatedAt,
	}
}

func (s Snapshot) ToDomain() (*domain.Snapshot, error) {
	if s.ID == "" || s.Path == "" {
		return nil, malformed("snapshot", s.ID)
	}
	return &domain.Snapshot{
		ID:           s.ID,
		RepositoryID: s.RepositoryID,
		Path:         s.Path,
		Content:      s.Content,
		Checksum:     s.Checksum,
		Size:         s.Size,
		CreatedAt:    s.CreatedAt,
	}, nil
}

func ToGormSnapshot(s *domain.Snapshot) *Snapshot {
	return &Snapshot{
		ID:           s.ID,
		RepositoryID: s.RepositoryID,
		Path:         s.Path,
		Content:      s.Content,
		Checksum:     s.Checksum,
		Size:         s.Size,
		CreatedAt:    s.CreatedAt,
	}
}

func (f WorkingFile) ToDomain() (*domain.WorkingFile, error) {
	if f.RepositoryID == "" || f.Path == "" {
		return nil, malformed("working file", f.Path)
	}
	return &domain.WorkingFile{
		RepositoryID: f.RepositoryID,
		Path:         f.Path,
		Content:      f.Content,
		Checksum:     f.Checksum,
		UpdatedAt:    f.UpdatedAt,
	}, nil
}

func ToGormWorkingFile(f *domain.WorkingFile) *WorkingFile {
	return &WorkingFile{
		RepositoryID: f.RepositoryID,
		Path:         f.Path,
		Content:      f.Content,
		Checksum:     f.Checksum,
		UpdatedAt:    f.UpdatedAt,
	}
}

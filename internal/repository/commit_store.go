package repository

import (
	"context"

	"github.com/just-nibble/snapvcs/internal/domain"
)

// CommitStore defines an interface for commit history operations.
// Commits and their snapshot links are append-only.
type CommitStore interface {
	SaveCommit(ctx context.Context, commit domain.Commit) (*domain.Commit, error)
	LinkSnapshots(ctx context.Context, commitID string, snapshotIDs []string) error
	CommitByID(ctx context.Context, repoID, commitID string) (*domain.Commit, error)
}

// SnapshotStore defines an interface for immutable file versions
type SnapshotStore interface {
	SaveSnapshots(ctx context.Context, snapshots []domain.Snapshot) error
	SnapshotsByCommit(ctx context.Context, commitID string) ([]domain.Snapshot, error)
}

// WorkingFileStore defines an interface for the mutable working tree
type WorkingFileStore interface {
	WorkingFile(ctx context.Context, repoID, path string) (*domain.WorkingFile, error)
	UpsertWorkingFile(ctx context.Context, file domain.WorkingFile) error
	DeleteWorkingFile(ctx context.Context, repoID, path string) error
	WorkingFiles(ctx context.Context, repoID string) ([]domain.WorkingFile, error)
	WorkingPaths(ctx context.Context, repoID string) ([]string, error)
	ClearWorkingTree(ctx context.Context, repoID string) (int64, error)
	SaveWorkingFiles(ctx context.Context, files []domain.WorkingFile) error
}

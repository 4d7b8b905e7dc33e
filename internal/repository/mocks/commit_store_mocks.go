package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/snapvcs/internal/domain"
)

// CommitStore mock
type CommitStore struct {
	mock.Mock
}

func (m *CommitStore) SaveCommit(ctx context.Context, commit domain.Commit) (*domain.Commit, error) {
	args := m.Called(ctx, commit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commit), args.Error(1)
}

func (m *CommitStore) LinkSnapshots(ctx context.Context, commitID string, snapshotIDs []string) error {
	args := m.Called(ctx, commitID, snapshotIDs)
	return args.Error(0)
}

func (m *CommitStore) CommitByID(ctx context.Context, repoID, commitID string) (*domain.Commit, error) {
	args := m.Called(ctx, repoID, commitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commit), args.Error(1)
}

// SnapshotStore mock
type SnapshotStore struct {
	mock.Mock
}

func (m *SnapshotStore) SaveSnapshots(ctx context.Context, snapshots []domain.Snapshot) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *SnapshotStore) SnapshotsByCommit(ctx context.Context, commitID string) ([]domain.Snapshot, error) {
	args := m.Called(ctx, commitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Snapshot), args.Error(1)
}

// WorkingFileStore mock
type WorkingFileStore struct {
	mock.Mock
}

func (m *WorkingFileStore) WorkingFile(ctx context.Context, repoID, path string) (*domain.WorkingFile, error) {
	args := m.Called(ctx, repoID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkingFile), args.Error(1)
}

func (m *WorkingFileStore) UpsertWorkingFile(ctx context.Context, file domain.WorkingFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *WorkingFileStore) DeleteWorkingFile(ctx context.Context, repoID, path string) error {
	args := m.Called(ctx, repoID, path)
	return args.Error(0)
}

func (m *WorkingFileStore) WorkingFiles(ctx context.Context, repoID string) ([]domain.WorkingFile, error) {
	args := m.Called(ctx, repoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkingFile), args.Error(1)
}

func (m *WorkingFileStore) WorkingPaths(ctx context.Context, repoID string) ([]string, error) {
	args := m.Called(ctx, repoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *WorkingFileStore) ClearWorkingTree(ctx context.Context, repoID string) (int64, error) {
	args := m.Called(ctx, repoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *WorkingFileStore) SaveWorkingFiles(ctx context.Context, files []domain.WorkingFile) error {
	args := m.Called(ctx, files)
	return args.Error(0)
}

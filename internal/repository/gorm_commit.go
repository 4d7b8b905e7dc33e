package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

const insertBatchSize = 200

// GormCommitStore is a GORM-based implementation of CommitStore
type GormCommitStore struct {
	db *gorm.DB
}

// NewGormCommitStore initializes a new GormCommitStore
func NewGormCommitStore(db *gorm.DB) CommitStore {
	return &GormCommitStore{db: db}
}

// SaveCommit stores a commit record
func (s *GormCommitStore) SaveCommit(ctx context.Context, commit domain.Commit) (*domain.Commit, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	dbCommit := ToGormCommit(&commit)
	if err := s.db.WithContext(ctx).Create(dbCommit).Error; err != nil {
		return nil, translate(err)
	}
	return dbCommit.ToDomain()
}

func (s *GormCommitStore) LinkSnapshots(ctx context.Context, commitID string, snapshotIDs []string) error {
	if len(snapshotIDs) == 0 {
		return nil
	}

	links := make([]CommitSnapshot, 0, len(snapshotIDs))
	for _, id := range snapshotIDs {
		links = append(links, CommitSnapshot{CommitID: commitID, SnapshotID: id})
	}
	return translate(s.db.WithContext(ctx).CreateInBatches(links, insertBatchSize).Error)
}

// CommitByID fetches a commit scoped to its repository
func (s *GormCommitStore) CommitByID(ctx context.Context, repoID, commitID string) (*domain.Commit, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	var commit Commit
	err := s.db.WithContext(ctx).Where("repository_id = ? AND id = ?", repoID, commitID).Limit(1).Find(&commit).Error
	if err != nil {
		return nil, translate(err)
	}
	if commit.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return commit.ToDomain()
}

// GormSnapshotStore is a GORM-based implementation of SnapshotStore
type GormSnapshotStore struct {
	db *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) SnapshotStore {
	return &GormSnapshotStore{db: db}
}

func (s *GormSnapshotStore) SaveSnapshots(ctx context.Context, snapshots []domain.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	rows := make([]Snapshot, 0, len(snapshots))
	for i := range snapshots {
		rows = append(rows, *ToGormSnapshot(&snapshots[i]))
	}
	return translate(s.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error)
}

// SnapshotsByCommit returns the snapshot set linked to a commit, ordered by path.
func (s *GormSnapshotStore) SnapshotsByCommit(ctx context.Context, commitID string) ([]domain.Snapshot, error) {
	var rows []Snapshot
	err := s.db.WithContext(ctx).
		Joins("JOIN commit_snapshots ON commit_snapshots.snapshot_id = snapshots.id").
		Where("commit_snapshots.commit_id = ?", commitID).
		Order("snapshots.path ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	snapshots := make([]domain.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snap)
	}
	return snapshots, nil
}

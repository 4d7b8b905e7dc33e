package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// GormBranchStore is a GORM-based implementation of BranchStore
type GormBranchStore struct {
	db *gorm.DB
}

func NewGormBranchStore(db *gorm.DB) BranchStore {
	return &GormBranchStore{db: db}
}

func (s *GormBranchStore) CreateBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	dbBranch := ToGormBranch(&branch)
	if err := s.db.WithContext(ctx).Create(dbBranch).Error; err != nil {
		return nil, translate(err)
	}
	return dbBranch.ToDomain()
}

func (s *GormBranchStore) BranchByName(ctx context.Context, repoID, name string) (*domain.Branch, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	var branch Branch
	err := s.db.WithContext(ctx).Where("repository_id = ? AND name = ?", repoID, name).Limit(1).Find(&branch).Error
	if err != nil {
		return nil, translate(err)
	}
	if branch.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return branch.ToDomain()
}

func (s *GormBranchStore) BranchesByRepository(ctx context.Context, repoID string) ([]domain.Branch, error) {
	var dbBranches []Branch
	err := s.db.WithContext(ctx).Where("repository_id = ?", repoID).Order("name ASC").Find(&dbBranches).Error
	if err != nil {
		return nil, translate(err)
	}

	branches := make([]domain.Branch, 0, len(dbBranches))
	for _, b := range dbBranches {
		branch, err := b.ToDomain()
		if err != nil {
			return nil, err
		}
		branches = append(branches, *branch)
	}
	return branches, nil
}

func (s *GormBranchStore) AdvanceHead(ctx context.Context, branch domain.Branch, next string) (*domain.Branch, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Model(&Branch{}).
		Where("id = ? AND version = ?", branch.ID, branch.Version)
	if branch.HasHead() {
		q = q.Where("head_commit_id = ?", branch.Head())
	} else {
		q = q.Where("head_commit_id IS NULL")
	}

	res := q.Updates(map[string]any{
		"head_commit_id": next,
		"version":        branch.Version + 1,
	})
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errcodes.ErrHeadMoved
	}

	branch.HeadCommitID = &next
	branch.Version++
	return &branch, nil
}

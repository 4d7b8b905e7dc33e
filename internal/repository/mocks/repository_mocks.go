package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/snapvcs/internal/domain"
)

// RepositoryStore mock
type RepositoryStore struct {
	mock.Mock
}

func (m *RepositoryStore) CreateRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error) {
	args := m.Called(ctx, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repository), args.Error(1)
}

func (m *RepositoryStore) RepositoryByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Repository, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repository), args.Error(1)
}

func (m *RepositoryStore) RepositoriesByOwner(ctx context.Context, ownerID string, query domain.PageQuery) (*domain.RepositoryPage, error) {
	args := m.Called(ctx, ownerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepositoryPage), args.Error(1)
}

// BranchStore mock
type BranchStore struct {
	mock.Mock
}

func (m *BranchStore) CreateBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	args := m.Called(ctx, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *BranchStore) BranchByName(ctx context.Context, repoID, name string) (*domain.Branch, error) {
	args := m.Called(ctx, repoID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *BranchStore) BranchesByRepository(ctx context.Context, repoID string) ([]domain.Branch, error) {
	args := m.Called(ctx, repoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *BranchStore) AdvanceHead(ctx context.Context, branch domain.Branch, next string) (*domain.Branch, error) {
	args := m.Called(ctx, branch, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

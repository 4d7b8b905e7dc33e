package repository

import (
	"context"

	"github.com/just-nibble/snapvcs/internal/domain"
)

// RepositoryStore defines an interface for database operations
type RepositoryStore interface {
	CreateRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error)
	RepositoryByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Repository, error)
	RepositoriesByOwner(ctx context.Context, ownerID string, query domain.PageQuery) (*domain.RepositoryPage, error)
}

// BranchStore defines an interface for branch pointer operations
type BranchStore interface {
	CreateBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error)
	BranchByName(ctx context.Context, repoID, name string) (*domain.Branch, error)
	BranchesByRepository(ctx context.Context, repoID string) ([]domain.Branch, error)
	// AdvanceHead moves branch's head to next only if the stored head and
	// version still match branch. A mismatch returns errcodes.ErrHeadMoved.
	AdvanceHead(ctx context.Context, branch domain.Branch, next string) (*domain.Branch, error)
}

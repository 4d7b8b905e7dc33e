package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// resolveRepository looks a repository up by its owner scope. Every
// operation goes through here, so no query escapes (ownerID, name).
func resolveRepository(ctx context.Context, store repository.RepositoryStore, ownerID, name string) (*domain.Repository, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errcodes.ErrOwnerRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, errcodes.ErrNameRequired
	}

	repo, err := store.RepositoryByOwnerAndName(ctx, ownerID, name)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, fmt.Errorf("%w: %s", errcodes.ErrRepoNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func resolveBranch(ctx context.Context, store repository.BranchStore, repo *domain.Repository, name string) (*domain.Branch, error) {
	if name == "" {
		name = defaultBranch(repo)
	}

	branch, err := store.BranchByName(ctx, repo.ID, name)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, fmt.Errorf("%w: %s", errcodes.ErrBranchNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return branch, nil
}

func defaultBranch(repo *domain.Repository) string {
	if repo.DefaultBranch != "" {
		return repo.DefaultBranch
	}
	return domain.DefaultBranch
}

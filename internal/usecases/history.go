package usecases

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// HistoryUsecase walks a branch's parent chain. It never writes.
type HistoryUsecase interface {
	// Log returns at most limit commits reachable from the branch head,
	// newest first. limit <= 0 or above the configured depth uses the depth.
	Log(ctx context.Context, ownerID, repoName, branch string, limit int) ([]domain.Commit, error)
}

type historyUsecase struct {
	stores   repository.Stores
	maxDepth int
	log      zerolog.Logger
}

func NewHistoryUsecase(stores repository.Stores, maxDepth int, log zerolog.Logger) HistoryUsecase {
	return &historyUsecase{stores: stores, maxDepth: maxDepth, log: log}
}

func (uc *historyUsecase) Log(ctx context.Context, ownerID, repoName, branchName string, limit int) ([]domain.Commit, error) {
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return nil, err
	}
	branch, err := resolveBranch(ctx, uc.stores.Branches, repo, branchName)
	if err != nil {
		return nil, err
	}

	depth := uc.maxDepth
	if limit > 0 && (depth <= 0 || limit < depth) {
		depth = limit
	}

	entries := []domain.Commit{}
	next := branch.Head()
	for next != "" && (depth <= 0 || len(entries) < depth) {
		if err := errcodes.FromContext(ctx); err != nil {
			return nil, err
		}

		commit, err := uc.stores.Commits.CommitByID(ctx, repo.ID, next)
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			uc.log.Warn().Str("repo", repoName).Str("commit", next).Msg("history chain broken, stopping walk")
			break
		}
		if err != nil {
			return nil, err
		}

		entries = append(entries, *commit)
		next = commit.Parent()
	}
	return entries, nil
}

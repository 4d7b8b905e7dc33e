package usecases

import (
	"context"

	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/repository"
)

const defaultTopAuthors = 10

type AuthorUseCase interface {
	GetTopAuthors(ctx context.Context, ownerID, repoName string, limit int) ([]dtos.TopAuthor, error)
}

type authorUseCase struct {
	repoStore   repository.RepositoryStore
	authorStore repository.AuthorStore
}

func NewAuthorUseCase(repoStore repository.RepositoryStore, authorStore repository.AuthorStore) AuthorUseCase {
	return &authorUseCase{
		repoStore:   repoStore,
		authorStore: authorStore,
	}
}

func (s *authorUseCase) GetTopAuthors(ctx context.Context, ownerID, repoName string, limit int) ([]dtos.TopAuthor, error) {
	repo, err := resolveRepository(ctx, s.repoStore, ownerID, repoName)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopAuthors
	}

	as, err := s.authorStore.GetTopAuthors(ctx, repo.ID, limit)
	if err != nil {
		return nil, err
	}

	authors := make([]dtos.TopAuthor, 0, len(as))
	for _, v := range as {
		authors = append(authors, dtos.TopAuthor{
			Name:        v.Name,
			Email:       v.Email,
			CommitCount: v.CommitCount,
		})
	}
	return authors, nil
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/snapvcs/internal/repository"
)

// AuthorStore mock
type AuthorStore struct {
	mock.Mock
}

func (m *AuthorStore) GetTopAuthors(ctx context.Context, repoID string, limit int) ([]repository.Author, error) {
	args := m.Called(ctx, repoID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Author), args.Error(1)
}

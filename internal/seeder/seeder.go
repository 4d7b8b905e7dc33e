package seeder

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/usecases"
)

const (
	DemoOwner = "acme"
	DemoName  = "demo"
)

var demoFiles = map[string]string{
	"README.md": "# demo\n\nSeeded example repository.\n",
	"a.txt":     "hello",
	"src/b.txt": "world",
}

type Seeder struct {
	Repositories usecases.GitRepositoryUsecase
	WorkTree     usecases.WorkTreeUsecase
	Snapshots    usecases.SnapshotUsecase
	Log          zerolog.Logger
}

// SeedDatabase creates the demo repository for ownerID with one commit on
// main. It does nothing if the owner already has any repository.
func (s Seeder) SeedDatabase(ctx context.Context, ownerID string) (*domain.Commit, error) {
	page, err := s.Repositories.GetAll(ctx, ownerID, domain.PageQuery{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	if page.PageInfo.TotalCount > 0 {
		s.Log.Info().Str("owner", ownerID).Msg("owner already has repositories, skipping seed")
		return nil, nil
	}

	s.Log.Info().Str("owner", ownerID).Str("repo", DemoName).Msg("seeding demo repository")

	if _, _, err := s.Repositories.Init(ctx, ownerID, dtos.RepositoryInput{Owner: DemoOwner, Name: DemoName}); err != nil {
		return nil, err
	}
	for path, content := range demoFiles {
		if _, err := s.WorkTree.WriteFile(ctx, ownerID, DemoName, path, content); err != nil {
			return nil, err
		}
	}

	commit, err := s.Snapshots.Commit(ctx, ownerID, DemoName, dtos.CommitInput{
		Branch:     domain.DefaultBranch,
		Message:    "Initial commit",
		AuthorName: DemoOwner,
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info().Str("commit", commit.ShortSHA()).Msg("database seeding completed")
	return commit, nil
}

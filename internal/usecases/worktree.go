package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/digest"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/validator"
)

// WorkTreeUsecase reads and writes the live working tree. Writes are
// last-writer-wins; nothing here touches history.
type WorkTreeUsecase interface {
	ReadFile(ctx context.Context, ownerID, repoName, path string) (*domain.WorkingFile, error)
	WriteFile(ctx context.Context, ownerID, repoName, path, content string) (string, error)
	DeleteFile(ctx context.Context, ownerID, repoName, path string) error
	Tree(ctx context.Context, ownerID, repoName string) ([]string, error)
}

type workTreeUsecase struct {
	stores repository.Stores
	clock  domain.Clock
	log    zerolog.Logger
}

func NewWorkTreeUsecase(stores repository.Stores, clock domain.Clock, log zerolog.Logger) WorkTreeUsecase {
	return &workTreeUsecase{stores: stores, clock: clock, log: log}
}

func (uc *workTreeUsecase) ReadFile(ctx context.Context, ownerID, repoName, path string) (*domain.WorkingFile, error) {
	clean, err := validator.CleanPath(path)
	if err != nil {
		return nil, err
	}
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return nil, err
	}

	file, err := uc.stores.WorkingFiles.WorkingFile(ctx, repo.ID, clean)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, fmt.Errorf("%w: %s", errcodes.ErrFileNotFound, clean)
	}
	return file, err
}

func (uc *workTreeUsecase) WriteFile(ctx context.Context, ownerID, repoName, path, content string) (string, error) {
	clean, err := validator.CleanPath(path)
	if err != nil {
		return "", err
	}
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return "", err
	}

	err = uc.stores.WorkingFiles.UpsertWorkingFile(ctx, domain.WorkingFile{
		RepositoryID: repo.ID,
		Path:         clean,
		Content:      content,
		Checksum:     digest.Checksum(content),
		UpdatedAt:    uc.clock.Now(),
	})
	if err != nil {
		uc.log.Error().Err(err).Str("repo", repoName).Str("path", clean).Msg("failed to write file")
		return "", err
	}

	uc.log.Debug().Str("repo", repoName).Str("path", clean).Int("bytes", len(content)).Msg("file written")
	return clean, nil
}

func (uc *workTreeUsecase) DeleteFile(ctx context.Context, ownerID, repoName, path string) error {
	clean, err := validator.CleanPath(path)
	if err != nil {
		return err
	}
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return err
	}
	return uc.stores.WorkingFiles.DeleteWorkingFile(ctx, repo.ID, clean)
}

func (uc *workTreeUsecase) Tree(ctx context.Context, ownerID, repoName string) ([]string, error) {
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return nil, err
	}
	return uc.stores.WorkingFiles.WorkingPaths(ctx, repo.ID)
}

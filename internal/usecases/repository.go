package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/validator"
)

type GitRepositoryUsecase interface {
	// Init creates the repository and its default branch. Initializing an
	// existing repository is not an error; initialized is false then.
	Init(ctx context.Context, ownerID string, input dtos.RepositoryInput) (initialized bool, repo *domain.Repository, err error)
	GetByName(ctx context.Context, ownerID, name string) (*domain.Repository, error)
	GetAll(ctx context.Context, ownerID string, query domain.PageQuery) (*domain.RepositoryPage, error)
}

type gitRepoUsecase struct {
	repoStore  repository.RepositoryStore
	transactor repository.Transactor
	clock      domain.Clock
	ids        domain.IDGenerator
	log        zerolog.Logger
}

func NewGitRepositoryUsecase(repoStore repository.RepositoryStore, transactor repository.Transactor,
	clock domain.Clock, ids domain.IDGenerator, log zerolog.Logger) GitRepositoryUsecase {
	return &gitRepoUsecase{
		repoStore:  repoStore,
		transactor: transactor,
		clock:      clock,
		ids:        ids,
		log:        log,
	}
}

func (uc *gitRepoUsecase) Init(ctx context.Context, ownerID string, input dtos.RepositoryInput) (bool, *domain.Repository, error) {
	if strings.TrimSpace(ownerID) == "" {
		return false, nil, errcodes.ErrOwnerRequired
	}
	if err := validator.Struct(input); err != nil {
		return false, nil, err
	}

	ownerName := input.Owner
	if ownerName == "" {
		ownerName = ownerID
	}

	var (
		created bool
		result  *domain.Repository
	)
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		existing, err := stores.Repositories.RepositoryByOwnerAndName(ctx, ownerID, input.Name)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, errcodes.ErrNoRecordFound) {
			return err
		}

		now := uc.clock.Now()
		repo, err := stores.Repositories.CreateRepository(ctx, domain.Repository{
			ID:            uc.ids.New(),
			OwnerID:       ownerID,
			OwnerName:     ownerName,
			Name:          input.Name,
			DefaultBranch: domain.DefaultBranch,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return err
		}

		_, err = stores.Branches.CreateBranch(ctx, domain.Branch{
			ID:           uc.ids.New(),
			RepositoryID: repo.ID,
			Name:         domain.DefaultBranch,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}

		created = true
		result = repo
		return nil
	})

	// A concurrent init won the unique index; that is still "already initialized".
	if errors.Is(err, errcodes.ErrDuplicateRecord) {
		existing, lookupErr := uc.repoStore.RepositoryByOwnerAndName(ctx, ownerID, input.Name)
		if lookupErr != nil {
			return false, nil, lookupErr
		}
		return false, existing, nil
	}
	if err != nil {
		uc.log.Error().Err(err).Str("repo", input.Name).Msg("failed to initialize repository")
		return false, nil, err
	}

	if created {
		uc.log.Info().Str("repo", result.Name).Str("repo_id", result.ID).Msg("repository initialized")
	}
	return created, result, nil
}

func (uc *gitRepoUsecase) GetByName(ctx context.Context, ownerID, name string) (*domain.Repository, error) {
	return resolveRepository(ctx, uc.repoStore, ownerID, name)
}

func (uc *gitRepoUsecase) GetAll(ctx context.Context, ownerID string, query domain.PageQuery) (*domain.RepositoryPage, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errcodes.ErrOwnerRequired
	}
	return uc.repoStore.RepositoriesByOwner(ctx, ownerID, query)
}

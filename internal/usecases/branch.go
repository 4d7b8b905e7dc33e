package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/validator"
)

type BranchUsecase interface {
	// Create copies the source branch's current head into a new branch.
	// Later commits on the source do not move the new branch.
	Create(ctx context.Context, ownerID, repoName string, input dtos.CreateBranchInput) (*domain.Branch, error)
	List(ctx context.Context, ownerID, repoName string) ([]domain.Branch, error)
}

type branchUsecase struct {
	stores     repository.Stores
	transactor repository.Transactor
	clock      domain.Clock
	ids        domain.IDGenerator
	log        zerolog.Logger
}

func NewBranchUsecase(stores repository.Stores, transactor repository.Transactor,
	clock domain.Clock, ids domain.IDGenerator, log zerolog.Logger) BranchUsecase {
	return &branchUsecase{
		stores:     stores,
		transactor: transactor,
		clock:      clock,
		ids:        ids,
		log:        log,
	}
}

func (uc *branchUsecase) Create(ctx context.Context, ownerID, repoName string, input dtos.CreateBranchInput) (*domain.Branch, error) {
	if err := validator.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", errcodes.ErrInvalidBranch, err)
	}

	var created *domain.Branch
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		repo, err := resolveRepository(ctx, stores.Repositories, ownerID, repoName)
		if err != nil {
			return err
		}

		_, err = stores.Branches.BranchByName(ctx, repo.ID, input.Name)
		if err == nil {
			return fmt.Errorf("%w: %s", errcodes.ErrBranchExists, input.Name)
		}
		if !errors.Is(err, errcodes.ErrNoRecordFound) {
			return err
		}

		source, err := resolveBranch(ctx, stores.Branches, repo, input.From)
		if err != nil {
			return err
		}

		var head *string
		if source.HasHead() {
			h := source.Head()
			head = &h
		}

		now := uc.clock.Now()
		created, err = stores.Branches.CreateBranch(ctx, domain.Branch{
			ID:           uc.ids.New(),
			RepositoryID: repo.ID,
			Name:         input.Name,
			HeadCommitID: head,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if errors.Is(err, errcodes.ErrDuplicateRecord) {
			return fmt.Errorf("%w: %s", errcodes.ErrBranchExists, input.Name)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("repo", repoName).Str("branch", created.Name).Str("head", created.Head()).Msg("branch created")
	return created, nil
}

func (uc *branchUsecase) List(ctx context.Context, ownerID, repoName string) ([]domain.Branch, error) {
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return nil, err
	}
	return uc.stores.Branches.BranchesByRepository(ctx, repo.ID)
}

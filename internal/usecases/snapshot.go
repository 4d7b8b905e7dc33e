package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/digest"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/validator"
)

// SnapshotUsecase freezes the working tree into commits and restores it from them.
type SnapshotUsecase interface {
	Commit(ctx context.Context, ownerID, repoName string, input dtos.CommitInput) (*domain.Commit, error)
	Checkout(ctx context.Context, ownerID, repoName, branch string) (*domain.CheckoutResult, error)
	Show(ctx context.Context, ownerID, repoName, commitID string) (*domain.CommitDetail, error)
}

type snapshotUsecase struct {
	stores     repository.Stores
	transactor repository.Transactor
	clock      domain.Clock
	ids        domain.IDGenerator
	log        zerolog.Logger
}

func NewSnapshotUsecase(stores repository.Stores, transactor repository.Transactor,
	clock domain.Clock, ids domain.IDGenerator, log zerolog.Logger) SnapshotUsecase {
	return &snapshotUsecase{
		stores:     stores,
		transactor: transactor,
		clock:      clock,
		ids:        ids,
		log:        log,
	}
}

func (uc *snapshotUsecase) Commit(ctx context.Context, ownerID, repoName string, input dtos.CommitInput) (*domain.Commit, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, errcodes.ErrMessageRequired
	}
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	var created *domain.Commit
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		repo, err := resolveRepository(ctx, stores.Repositories, ownerID, repoName)
		if err != nil {
			return err
		}
		branch, err := resolveBranch(ctx, stores.Branches, repo, input.Branch)
		if err != nil {
			return err
		}
		if input.ExpectedHead != nil && *input.ExpectedHead != branch.Head() {
			return fmt.Errorf("%w: %s is at %q", errcodes.ErrHeadMoved, branch.Name, branch.Head())
		}

		files, err := stores.WorkingFiles.WorkingFiles(ctx, repo.ID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		snapshots := make([]domain.Snapshot, 0, len(files))
		snapshotIDs := make([]string, 0, len(files))
		entries := make([]digest.Entry, 0, len(files))
		for _, f := range files {
			checksum := f.Checksum
			if checksum == "" {
				checksum = digest.Checksum(f.Content)
			}
			snap := domain.Snapshot{
				ID:           uc.ids.New(),
				RepositoryID: repo.ID,
				Path:         f.Path,
				Content:      f.Content,
				Checksum:     checksum,
				Size:         int64(len(f.Content)),
				CreatedAt:    now,
			}
			snapshots = append(snapshots, snap)
			snapshotIDs = append(snapshotIDs, snap.ID)
			entries = append(entries, digest.Entry{Path: snap.Path, Checksum: checksum})
		}

		var parentSHA string
		if branch.HasHead() {
			parent, err := stores.Commits.CommitByID(ctx, repo.ID, branch.Head())
			if err != nil {
				return fmt.Errorf("loading parent commit: %w", err)
			}
			parentSHA = parent.SHA
		}

		author := domain.Author{Name: input.AuthorName, Email: input.AuthorEmail}
		if author.Name == "" {
			author.Name = ownerID
		}
		treeHash := digest.TreeHash(entries)
		branchID := branch.ID
		commit := domain.Commit{
			ID:           uc.ids.New(),
			RepositoryID: repo.ID,
			BranchID:     &branchID,
			ParentID:     branch.HeadCommitID,
			TreeHash:     treeHash,
			Message:      input.Message,
			Author:       author,
			CreatedAt:    now,
			SHA: digest.CommitSHA(digest.CommitInput{
				TreeHash:    treeHash,
				ParentSHA:   parentSHA,
				AuthorName:  author.Name,
				AuthorEmail: author.Email,
				Message:     input.Message,
				When:        now,
			}),
		}

		if err := stores.Snapshots.SaveSnapshots(ctx, snapshots); err != nil {
			return err
		}
		created, err = stores.Commits.SaveCommit(ctx, commit)
		if err != nil {
			return err
		}
		if err := stores.Commits.LinkSnapshots(ctx, created.ID, snapshotIDs); err != nil {
			return err
		}
		_, err = stores.Branches.AdvanceHead(ctx, *branch, created.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, errcodes.ErrHeadMoved) {
			uc.log.Warn().Str("repo", repoName).Str("branch", input.Branch).Msg("commit rejected, branch head moved")
		} else if errcodes.KindOf(err) == errcodes.KindInternal {
			uc.log.Error().Err(err).Str("repo", repoName).Msg("commit failed")
		}
		return nil, err
	}

	uc.log.Info().
		Str("repo", repoName).
		Str("commit", created.ShortSHA()).
		Str("parent", created.Parent()).
		Msg("commit created")
	return created, nil
}

func (uc *snapshotUsecase) Checkout(ctx context.Context, ownerID, repoName, branchName string) (*domain.CheckoutResult, error) {
	if branchName != "" && !validator.IsBranchName(branchName) {
		return nil, fmt.Errorf("%w: %q", errcodes.ErrInvalidBranch, branchName)
	}

	var result *domain.CheckoutResult
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		repo, err := resolveRepository(ctx, stores.Repositories, ownerID, repoName)
		if err != nil {
			return err
		}
		branch, err := resolveBranch(ctx, stores.Branches, repo, branchName)
		if err != nil {
			return err
		}

		removed, err := stores.WorkingFiles.ClearWorkingTree(ctx, repo.ID)
		if err != nil {
			return err
		}
		result = &domain.CheckoutResult{Branch: branch.Name, HeadCommitID: branch.HeadCommitID, Removed: removed}
		if !branch.HasHead() {
			return nil
		}

		snapshots, err := stores.Snapshots.SnapshotsByCommit(ctx, branch.Head())
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		files := make([]domain.WorkingFile, 0, len(snapshots))
		for _, s := range snapshots {
			files = append(files, domain.WorkingFile{
				RepositoryID: repo.ID,
				Path:         s.Path,
				Content:      s.Content,
				Checksum:     s.Checksum,
				UpdatedAt:    now,
			})
		}
		if err := stores.WorkingFiles.SaveWorkingFiles(ctx, files); err != nil {
			return err
		}
		result.Files = len(files)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("repo", repoName).
		Str("branch", result.Branch).
		Int("files", result.Files).
		Int64("removed", result.Removed).
		Msg("checked out")
	return result, nil
}

func (uc *snapshotUsecase) Show(ctx context.Context, ownerID, repoName, commitID string) (*domain.CommitDetail, error) {
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return nil, err
	}

	commit, err := uc.stores.Commits.CommitByID(ctx, repo.ID, commitID)
	if errors.Is(err, errcodes.ErrNoRecordFound) {
		return nil, fmt.Errorf("%w: %s", errcodes.ErrCommitNotFound, commitID)
	}
	if err != nil {
		return nil, err
	}

	snapshots, err := uc.stores.Snapshots.SnapshotsByCommit(ctx, commit.ID)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		paths = append(paths, s.Path)
	}
	return &domain.CommitDetail{Commit: *commit, Paths: paths}, nil
}

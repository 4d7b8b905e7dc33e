package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
	"github.com/just-nibble/snapvcs/pkg/validator"
)

// StatusUsecase compares the working tree against a branch head.
type StatusUsecase interface {
	Status(ctx context.Context, ownerID, repoName, branch string) (*domain.Branch, []domain.StatusEntry, error)
	Diff(ctx context.Context, ownerID, repoName, branch, path string) (*domain.FileDiff, error)
}

type statusUsecase struct {
	stores repository.Stores
}

func NewStatusUsecase(stores repository.Stores) StatusUsecase {
	return &statusUsecase{stores: stores}
}

func (uc *statusUsecase) headSnapshots(ctx context.Context, ownerID, repoName, branchName string) (*domain.Repository, *domain.Branch, []domain.Snapshot, error) {
	repo, err := resolveRepository(ctx, uc.stores.Repositories, ownerID, repoName)
	if err != nil {
		return nil, nil, nil, err
	}
	branch, err := resolveBranch(ctx, uc.stores.Branches, repo, branchName)
	if err != nil {
		return nil, nil, nil, err
	}
	if !branch.HasHead() {
		return repo, branch, nil, nil
	}

	snapshots, err := uc.stores.Snapshots.SnapshotsByCommit(ctx, branch.Head())
	if err != nil {
		return nil, nil, nil, err
	}
	return repo, branch, snapshots, nil
}

func (uc *statusUsecase) Status(ctx context.Context, ownerID, repoName, branchName string) (*domain.Branch, []domain.StatusEntry, error) {
	repo, branch, snapshots, err := uc.headSnapshots(ctx, ownerID, repoName, branchName)
	if err != nil {
		return nil, nil, err
	}
	files, err := uc.stores.WorkingFiles.WorkingFiles(ctx, repo.ID)
	if err != nil {
		return nil, nil, err
	}

	committed := make(map[string]string, len(snapshots))
	for _, s := range snapshots {
		committed[s.Path] = s.Checksum
	}

	entries := []domain.StatusEntry{}
	for _, f := range files {
		sum, ok := committed[f.Path]
		switch {
		case !ok:
			entries = append(entries, domain.StatusEntry{Path: f.Path, State: domain.FileAdded})
		case sum != f.Checksum:
			entries = append(entries, domain.StatusEntry{Path: f.Path, State: domain.FileModified})
		}
		delete(committed, f.Path)
	}
	for path := range committed {
		entries = append(entries, domain.StatusEntry{Path: path, State: domain.FileDeleted})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return branch, entries, nil
}

func (uc *statusUsecase) Diff(ctx context.Context, ownerID, repoName, branchName, path string) (*domain.FileDiff, error) {
	clean, err := validator.CleanPath(path)
	if err != nil {
		return nil, err
	}
	repo, _, snapshots, err := uc.headSnapshots(ctx, ownerID, repoName, branchName)
	if err != nil {
		return nil, err
	}

	var head, working string
	var inHead, inWorking bool
	for _, s := range snapshots {
		if s.Path == clean {
			head, inHead = s.Content, true
			break
		}
	}

	file, err := uc.stores.WorkingFiles.WorkingFile(ctx, repo.ID, clean)
	switch {
	case err == nil:
		working, inWorking = file.Content, true
	case !errors.Is(err, errcodes.ErrNoRecordFound):
		return nil, err
	}

	if !inHead && !inWorking {
		return nil, fmt.Errorf("%w: %s", errcodes.ErrFileNotFound, clean)
	}

	return &domain.FileDiff{
		Path:    clean,
		Head:    head,
		Working: working,
		Hunks:   lineDiff(head, working),
	}, nil
}

// lineDiff compares two texts line by line rather than by character.
func lineDiff(a, b string) []domain.DiffHunk {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	hunks := make([]domain.DiffHunk, 0, len(diffs))
	for _, d := range diffs {
		op := domain.DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = domain.DiffInsert
		case diffmatchpatch.DiffDelete:
			op = domain.DiffDelete
		}
		hunks = append(hunks, domain.DiffHunk{Op: op, Text: d.Text})
	}
	return hunks
}

package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/internal/repository/mocks"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

type snapshotMocks struct {
	repos     *mocks.RepositoryStore
	branches  *mocks.BranchStore
	commits   *mocks.CommitStore
	snapshots *mocks.SnapshotStore
	files     *mocks.WorkingFileStore
	tx        *mocks.Transactor
}

func newSnapshotMocks() (*snapshotMocks, SnapshotUsecase) {
	m := &snapshotMocks{
		repos:     new(mocks.RepositoryStore),
		branches:  new(mocks.BranchStore),
		commits:   new(mocks.CommitStore),
		snapshots: new(mocks.SnapshotStore),
		files:     new(mocks.WorkingFileStore),
	}
	stores := repository.Stores{
		Repositories: m.repos,
		Branches:     m.branches,
		Commits:      m.commits,
		Snapshots:    m.snapshots,
		WorkingFiles: m.files,
	}
	m.tx = &mocks.Transactor{Stores: stores}
	uc := NewSnapshotUsecase(stores, m.tx, fixedClock{time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}, &seqIDs{}, zerolog.Nop())
	return m, uc
}

var demoRepo = &domain.Repository{ID: "r1", OwnerID: "u1", Name: "demo", DefaultBranch: domain.DefaultBranch}

func TestSnapshotUsecase_Commit_RequiresMessage(t *testing.T) {
	m, uc := newSnapshotMocks()

	_, err := uc.Commit(context.Background(), "u1", "demo", dtos.CommitInput{Message: "  "})

	assert.ErrorIs(t, err, errcodes.ErrMessageRequired)
	assert.Zero(t, m.tx.Calls)
}

// TestSnapshotUsecase_Commit_FirstCommit tests a root commit on an empty branch
func TestSnapshotUsecase_Commit_FirstCommit(t *testing.T) {
	// Arrange
	m, uc := newSnapshotMocks()
	branch := &domain.Branch{ID: "b1", RepositoryID: "r1", Name: "main"}

	m.repos.On("RepositoryByOwnerAndName", mock.Anything, "u1", "demo").Return(demoRepo, nil)
	m.branches.On("BranchByName", mock.Anything, "r1", "main").Return(branch, nil)
	m.files.On("WorkingFiles", mock.Anything, "r1").Return([]domain.WorkingFile{
		{RepositoryID: "r1", Path: "a.txt", Content: "hello", Checksum: "c1"},
	}, nil)
	m.snapshots.On("SaveSnapshots", mock.Anything, mock.MatchedBy(func(s []domain.Snapshot) bool {
		return len(s) == 1 && s[0].Path == "a.txt" && s[0].Content == "hello" && s[0].Size == 5
	})).Return(nil)
	m.commits.On("SaveCommit", mock.Anything, mock.MatchedBy(func(c domain.Commit) bool {
		return c.ParentID == nil && c.Message == "first" && len(c.SHA) == 40 && c.Author.Name == "Ada"
	})).Return(&domain.Commit{ID: "k1", RepositoryID: "r1", SHA: "abc1234def", Message: "first"}, nil)
	m.commits.On("LinkSnapshots", mock.Anything, "k1", []string{"id-1"}).Return(nil)
	m.branches.On("AdvanceHead", mock.Anything, *branch, "k1").Return(&domain.Branch{}, nil)

	// Act
	commit, err := uc.Commit(context.Background(), "u1", "demo", dtos.CommitInput{Message: "first", AuthorName: "Ada"})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "k1", commit.ID)
	m.commits.AssertNotCalled(t, "CommitByID", mock.Anything, mock.Anything, mock.Anything)
	m.snapshots.AssertExpectations(t)
	m.commits.AssertExpectations(t)
	m.branches.AssertExpectations(t)
}

// TestSnapshotUsecase_Commit_ExpectedHeadMismatch tests the optimistic check before any write
func TestSnapshotUsecase_Commit_ExpectedHeadMismatch(t *testing.T) {
	// Arrange
	m, uc := newSnapshotMocks()
	head := "k2"
	m.repos.On("RepositoryByOwnerAndName", mock.Anything, "u1", "demo").Return(demoRepo, nil)
	m.branches.On("BranchByName", mock.Anything, "r1", "main").Return(&domain.Branch{ID: "b1", Name: "main", HeadCommitID: &head}, nil)

	// Act
	expected := "k1"
	_, err := uc.Commit(context.Background(), "u1", "demo", dtos.CommitInput{Message: "m", ExpectedHead: &expected})

	// Assert
	assert.ErrorIs(t, err, errcodes.ErrHeadMoved)
	m.files.AssertNotCalled(t, "WorkingFiles", mock.Anything, mock.Anything)
	m.commits.AssertNotCalled(t, "SaveCommit", mock.Anything, mock.Anything)
}

func TestSnapshotUsecase_Commit_BranchNotFound(t *testing.T) {
	m, uc := newSnapshotMocks()
	m.repos.On("RepositoryByOwnerAndName", mock.Anything, "u1", "demo").Return(demoRepo, nil)
	m.branches.On("BranchByName", mock.Anything, "r1", "dev").Return(nil, errcodes.ErrNoRecordFound)

	_, err := uc.Commit(context.Background(), "u1", "demo", dtos.CommitInput{Branch: "dev", Message: "m"})

	assert.ErrorIs(t, err, errcodes.ErrBranchNotFound)
	assert.Equal(t, errcodes.KindNotFound, errcodes.KindOf(err))
}

func TestSnapshotUsecase_Commit_TransactionFailure(t *testing.T) {
	m, uc := newSnapshotMocks()
	m.tx.Err = errors.New("begin failed")

	_, err := uc.Commit(context.Background(), "u1", "demo", dtos.CommitInput{Message: "m"})

	assert.EqualError(t, err, "begin failed")
	assert.Equal(t, errcodes.KindInternal, errcodes.KindOf(err))
}

// TestSnapshotUsecase_Checkout_NoHead tests that a branch without commits leaves an empty tree
func TestSnapshotUsecase_Checkout_NoHead(t *testing.T) {
	// Arrange
	m, uc := newSnapshotMocks()
	m.repos.On("RepositoryByOwnerAndName", mock.Anything, "u1", "demo").Return(demoRepo, nil)
	m.branches.On("BranchByName", mock.Anything, "r1", "empty").Return(&domain.Branch{ID: "b2", Name: "empty"}, nil)
	m.files.On("ClearWorkingTree", mock.Anything, "r1").Return(int64(3), nil)

	// Act
	result, err := uc.Checkout(context.Background(), "u1", "demo", "empty")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, &domain.CheckoutResult{Branch: "empty", Removed: 3}, result)
	m.snapshots.AssertNotCalled(t, "SnapshotsByCommit", mock.Anything, mock.Anything)
	m.files.AssertNotCalled(t, "SaveWorkingFiles", mock.Anything, mock.Anything)
}

func TestSnapshotUsecase_Checkout_InvalidBranch(t *testing.T) {
	m, uc := newSnapshotMocks()

	_, err := uc.Checkout(context.Background(), "u1", "demo", "-bad")

	assert.ErrorIs(t, err, errcodes.ErrInvalidBranch)
	assert.Zero(t, m.tx.Calls)
}

func TestSnapshotUsecase_Show_ForeignCommit(t *testing.T) {
	m, uc := newSnapshotMocks()
	m.repos.On("RepositoryByOwnerAndName", mock.Anything, "u1", "demo").Return(demoRepo, nil)
	m.commits.On("CommitByID", mock.Anything, "r1", "other").Return(nil, errcodes.ErrNoRecordFound)

	_, err := uc.Show(context.Background(), "u1", "demo", "other")

	assert.ErrorIs(t, err, errcodes.ErrCommitNotFound)
}

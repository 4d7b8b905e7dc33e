package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/dtos"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/internal/storage"
	"github.com/just-nibble/snapvcs/pkg/config"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

const testOwner = "owner-1"

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type engine struct {
	db        *gorm.DB
	stores    repository.Stores
	repos     GitRepositoryUsecase
	branches  BranchUsecase
	tree      WorkTreeUsecase
	snapshots SnapshotUsecase
	history   HistoryUsecase
	status    StatusUsecase
	authors   AuthorUseCase
}

func newEngine(t *testing.T, depth int) *engine {
	t.Helper()

	db, err := storage.OpenAndMigrate(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "snapvcs.db"),
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close(db) })

	stores := repository.NewStores(db)
	tx := repository.NewGormTransactor(db)
	clock := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ids := domain.UUIDGenerator{}
	log := zerolog.Nop()

	return &engine{
		db:        db,
		stores:    stores,
		repos:     NewGitRepositoryUsecase(stores.Repositories, tx, clock, ids, log),
		branches:  NewBranchUsecase(stores, tx, clock, ids, log),
		tree:      NewWorkTreeUsecase(stores, clock, log),
		snapshots: NewSnapshotUsecase(stores, tx, clock, ids, log),
		history:   NewHistoryUsecase(stores, depth, log),
		status:    NewStatusUsecase(stores),
		authors:   NewAuthorUseCase(stores.Repositories, stores.Authors),
	}
}

func (e *engine) init(t *testing.T, name string) {
	t.Helper()
	created, _, err := e.repos.Init(context.Background(), testOwner, dtos.RepositoryInput{Owner: "acme", Name: name})
	require.NoError(t, err)
	require.True(t, created)
}

func (e *engine) write(t *testing.T, repo, path, content string) {
	t.Helper()
	_, err := e.tree.WriteFile(context.Background(), testOwner, repo, path, content)
	require.NoError(t, err)
}

func (e *engine) commit(t *testing.T, repo, branch, message string) *domain.Commit {
	t.Helper()
	c, err := e.snapshots.Commit(context.Background(), testOwner, repo, dtos.CommitInput{
		Branch:      branch,
		Message:     message,
		AuthorName:  "Ada",
		AuthorEmail: "ada@example.com",
	})
	require.NoError(t, err)
	return c
}

func (e *engine) workingTree(t *testing.T, repo string) map[string]string {
	t.Helper()
	r, err := e.repos.GetByName(context.Background(), testOwner, repo)
	require.NoError(t, err)
	files, err := e.stores.WorkingFiles.WorkingFiles(context.Background(), r.ID)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = f.Content
	}
	return out
}

func TestEngine_Scenario(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	e.write(t, "demo", "a.txt", "hello")
	k1 := e.commit(t, "demo", "main", "first")
	e.write(t, "demo", "b.txt", "world")
	k2 := e.commit(t, "demo", "main", "second")

	assert.Nil(t, k1.ParentID)
	require.NotNil(t, k2.ParentID)
	assert.Equal(t, k1.ID, *k2.ParentID)
	assert.Len(t, k1.SHA, 40)
	assert.NotEqual(t, k1.SHA, k2.SHA)

	entries, err := e.history.Log(ctx, testOwner, "demo", "main", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, k2.ID, entries[0].ID)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, k1.ID, entries[0].Parent())
	assert.Equal(t, k1.ID, entries[1].ID)
	assert.Equal(t, "first", entries[1].Message)
	assert.Nil(t, entries[1].ParentID)

	e.write(t, "demo", "scratch.txt", "uncommitted")
	result, err := e.snapshots.Checkout(ctx, testOwner, "demo", "main")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Files)
	assert.Equal(t, map[string]string{"a.txt": "hello", "b.txt": "world"}, e.workingTree(t, "demo"))
}

func TestEngine_InitIsIdempotent(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	e.init(t, "demo")

	created, repo, err := e.repos.Init(context.Background(), testOwner, dtos.RepositoryInput{Name: "demo"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "demo", repo.Name)

	branches, err := e.branches.List(context.Background(), testOwner, "demo")
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, domain.DefaultBranch, branches[0].Name)
	assert.False(t, branches[0].HasHead())
}

func TestEngine_OwnerScoping(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	e.init(t, "demo")

	_, err := e.tree.Tree(context.Background(), "someone-else", "demo")
	assert.ErrorIs(t, err, errcodes.ErrRepoNotFound)
	assert.Equal(t, errcodes.KindNotFound, errcodes.KindOf(err))
}

func TestEngine_RoundTrip(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	e.init(t, "demo")

	want := map[string]string{
		"README.md":       "# demo\n",
		"src/main.go":     "package main\n\nfunc main() {}\n",
		"src/lib/util.go": "package lib\n",
		"empty.txt":       "",
	}
	for p, c := range want {
		e.write(t, "demo", p, c)
	}
	e.commit(t, "demo", "main", "snapshot")

	e.write(t, "demo", "README.md", "changed")
	require.NoError(t, e.tree.DeleteFile(context.Background(), testOwner, "demo", "src/main.go"))

	_, err := e.snapshots.Checkout(context.Background(), testOwner, "demo", "main")
	require.NoError(t, err)
	assert.Equal(t, want, e.workingTree(t, "demo"))
}

func TestEngine_CheckoutEmptyBranch(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	_, err := e.branches.Create(ctx, testOwner, "demo", dtos.CreateBranchInput{Name: "empty"})
	require.NoError(t, err)

	e.write(t, "demo", "a.txt", "hello")
	e.commit(t, "demo", "main", "first")
	e.write(t, "demo", "b.txt", "draft")

	result, err := e.snapshots.Checkout(ctx, testOwner, "demo", "empty")
	require.NoError(t, err)
	assert.Nil(t, result.HeadCommitID)
	assert.Equal(t, 0, result.Files)
	assert.EqualValues(t, 2, result.Removed)
	assert.Empty(t, e.workingTree(t, "demo"))
}

func TestEngine_BranchIsolation(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	e.write(t, "demo", "a.txt", "v1")
	base := e.commit(t, "demo", "main", "base")

	feature, err := e.branches.Create(ctx, testOwner, "demo", dtos.CreateBranchInput{Name: "feature", From: "main"})
	require.NoError(t, err)
	assert.Equal(t, base.ID, feature.Head())

	e.write(t, "demo", "a.txt", "v2")
	e.commit(t, "demo", "main", "main only")

	branches, err := e.branches.List(ctx, testOwner, "demo")
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, "feature", branches[0].Name)
	assert.Equal(t, base.ID, branches[0].Head())

	_, err = e.snapshots.Checkout(ctx, testOwner, "demo", "feature")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.txt": "v1"}, e.workingTree(t, "demo"))

	e.write(t, "demo", "f.txt", "feature work")
	fc := e.commit(t, "demo", "feature", "feature commit")
	assert.Equal(t, base.ID, fc.Parent())

	mainLog, err := e.history.Log(ctx, testOwner, "demo", "main", 0)
	require.NoError(t, err)
	require.Len(t, mainLog, 2)
	assert.Equal(t, "main only", mainLog[0].Message)
}

func TestEngine_CreateBranchErrors(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	_, err := e.branches.Create(ctx, testOwner, "demo", dtos.CreateBranchInput{Name: "main"})
	assert.ErrorIs(t, err, errcodes.ErrBranchExists)

	_, err = e.branches.Create(ctx, testOwner, "demo", dtos.CreateBranchInput{Name: "x", From: "nope"})
	assert.ErrorIs(t, err, errcodes.ErrBranchNotFound)

	_, err = e.branches.Create(ctx, testOwner, "demo", dtos.CreateBranchInput{Name: "bad..name"})
	assert.ErrorIs(t, err, errcodes.ErrInvalidBranch)
}

func TestEngine_LogDepthBound(t *testing.T) {
	e := newEngine(t, 50)
	ctx := context.Background()
	e.init(t, "demo")

	var last *domain.Commit
	for i := 0; i < 200; i++ {
		last = e.commit(t, "demo", "main", fmt.Sprintf("commit %d", i))
	}

	entries, err := e.history.Log(ctx, testOwner, "demo", "main", 0)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, last.ID, entries[0].ID)
	assert.Equal(t, "commit 199", entries[0].Message)
	assert.Equal(t, "commit 150", entries[49].Message)

	entries, err = e.history.Log(ctx, testOwner, "demo", "main", 5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	entries, err = e.history.Log(ctx, testOwner, "demo", "main", 500)
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestEngine_LogEmptyBranch(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	e.init(t, "demo")

	entries, err := e.history.Log(context.Background(), testOwner, "demo", "main", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = e.history.Log(context.Background(), testOwner, "demo", "missing", 0)
	assert.ErrorIs(t, err, errcodes.ErrBranchNotFound)
}

func TestEngine_EmptyCommit(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	e.init(t, "demo")

	c := e.commit(t, "demo", "main", "nothing yet")
	detail, err := e.snapshots.Show(context.Background(), testOwner, "demo", c.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Paths)

	e.write(t, "demo", "a.txt", "x")
	_, err = e.snapshots.Checkout(context.Background(), testOwner, "demo", "main")
	require.NoError(t, err)
	assert.Empty(t, e.workingTree(t, "demo"))
}

func TestEngine_StaleExpectedHead(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	e.write(t, "demo", "a.txt", "one")
	first := e.commit(t, "demo", "main", "first")
	e.write(t, "demo", "a.txt", "two")
	second := e.commit(t, "demo", "main", "second")

	stale := first.ID
	_, err := e.snapshots.Commit(ctx, testOwner, "demo", dtos.CommitInput{
		Branch:       "main",
		Message:      "third",
		ExpectedHead: &stale,
	})
	assert.ErrorIs(t, err, errcodes.ErrHeadMoved)
	assert.Equal(t, errcodes.KindConflict, errcodes.KindOf(err))

	current := second.ID
	third, err := e.snapshots.Commit(ctx, testOwner, "demo", dtos.CommitInput{
		Branch:       "main",
		Message:      "third",
		ExpectedHead: &current,
	})
	require.NoError(t, err)
	assert.Equal(t, second.ID, third.Parent())
}

func TestEngine_CommitRollsBackOnHeadConflict(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")
	e.write(t, "demo", "a.txt", "hello")

	repo, err := e.repos.GetByName(ctx, testOwner, "demo")
	require.NoError(t, err)

	// Bump the version behind the usecase's back so the CAS misses.
	tx := &conflictingTransactor{inner: repository.NewGormTransactor(e.db), wrap: &bumpingBranches{}}
	uc := NewSnapshotUsecase(e.stores, tx, &stepClock{}, domain.UUIDGenerator{}, zerolog.Nop())

	_, err = uc.Commit(ctx, testOwner, "demo", dtos.CommitInput{Message: "lost"})
	assert.ErrorIs(t, err, errcodes.ErrHeadMoved)

	var commits, snapshots int64
	require.NoError(t, e.db.Table("commits").Where("repository_id = ?", repo.ID).Count(&commits).Error)
	require.NoError(t, e.db.Table("snapshots").Where("repository_id = ?", repo.ID).Count(&snapshots).Error)
	assert.Zero(t, commits)
	assert.Zero(t, snapshots)

	branch, err := e.stores.Branches.BranchByName(ctx, repo.ID, "main")
	require.NoError(t, err)
	assert.False(t, branch.HasHead())
	assert.Zero(t, branch.Version)
}

// bumpingBranches makes AdvanceHead see a branch version that is already stale.
type bumpingBranches struct {
	repository.BranchStore
}

func (b *bumpingBranches) AdvanceHead(ctx context.Context, branch domain.Branch, next string) (*domain.Branch, error) {
	branch.Version--
	return b.BranchStore.AdvanceHead(ctx, branch, next)
}

type conflictingTransactor struct {
	inner repository.Transactor
	wrap  *bumpingBranches
}

func (c *conflictingTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, stores repository.Stores) error) error {
	return c.inner.WithinTransaction(ctx, func(ctx context.Context, stores repository.Stores) error {
		c.wrap.BranchStore = stores.Branches
		stores.Branches = c.wrap
		return fn(ctx, stores)
	})
}

func TestEngine_StatusAndDiff(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	e.write(t, "demo", "keep.txt", "same")
	e.write(t, "demo", "edit.txt", "line one\nline two\n")
	e.write(t, "demo", "gone.txt", "bye")
	e.commit(t, "demo", "main", "base")

	e.write(t, "demo", "edit.txt", "line one\nline 2\n")
	e.write(t, "demo", "new.txt", "fresh")
	require.NoError(t, e.tree.DeleteFile(ctx, testOwner, "demo", "gone.txt"))

	_, entries, err := e.status.Status(ctx, testOwner, "demo", "main")
	require.NoError(t, err)
	assert.Equal(t, []domain.StatusEntry{
		{Path: "edit.txt", State: domain.FileModified},
		{Path: "gone.txt", State: domain.FileDeleted},
		{Path: "new.txt", State: domain.FileAdded},
	}, entries)

	diff, err := e.status.Diff(ctx, testOwner, "demo", "main", "edit.txt")
	require.NoError(t, err)
	assert.Equal(t, []domain.DiffHunk{
		{Op: domain.DiffEqual, Text: "line one\n"},
		{Op: domain.DiffDelete, Text: "line two\n"},
		{Op: domain.DiffInsert, Text: "line 2\n"},
	}, diff.Hunks)

	_, err = e.status.Diff(ctx, testOwner, "demo", "main", "never.txt")
	assert.ErrorIs(t, err, errcodes.ErrFileNotFound)
}

func TestEngine_TopAuthors(t *testing.T) {
	e := newEngine(t, config.DefaultHistoryDepth)
	ctx := context.Background()
	e.init(t, "demo")

	e.commit(t, "demo", "main", "one")
	e.commit(t, "demo", "main", "two")
	_, err := e.snapshots.Commit(ctx, testOwner, "demo", dtos.CommitInput{
		Message: "three", AuthorName: "Grace", AuthorEmail: "grace@example.com",
	})
	require.NoError(t, err)

	authors, err := e.authors.GetTopAuthors(ctx, testOwner, "demo", 0)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, dtos.TopAuthor{Name: "Ada", Email: "ada@example.com", CommitCount: 2}, authors[0])
	assert.Equal(t, "Grace", authors[1].Name)
}

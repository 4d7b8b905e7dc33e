package repository

import (
	"context"

	"gorm.io/gorm"
)

// Stores groups every store bound to the same database handle, so a
// transaction can hand all of them to one unit of work.
type Stores struct {
	Repositories RepositoryStore
	Branches     BranchStore
	Commits      CommitStore
	Snapshots    SnapshotStore
	WorkingFiles WorkingFileStore
	Authors      AuthorStore
}

// NewStores binds every GORM store to db.
func NewStores(db *gorm.DB) Stores {
	return Stores{
		Repositories: NewGormRepositoryStore(db),
		Branches:     NewGormBranchStore(db),
		Commits:      NewGormCommitStore(db),
		Snapshots:    NewGormSnapshotStore(db),
		WorkingFiles: NewGormWorkingFileStore(db),
		Authors:      NewGormAuthorStore(db),
	}
}

// Transactor runs fn inside one database transaction. Any error returned
// by fn, or a panic, rolls back every write fn made through stores.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}

type GormTransactor struct {
	db *gorm.DB
}

func NewGormTransactor(db *gorm.DB) Transactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewStores(tx))
	})
}

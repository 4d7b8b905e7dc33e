package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormAuthorStore is a GORM-based implementation of AuthorStore
type GormAuthorStore struct {
	db *gorm.DB
}

// NewGormAuthorStore initializes a new GormAuthorStore
func NewGormAuthorStore(db *gorm.DB) AuthorStore {
	return &GormAuthorStore{db: db}
}

// GetTopAuthors ranks a repository's commit authors by commit count.
func (s *GormAuthorStore) GetTopAuthors(ctx context.Context, repoID string, limit int) ([]Author, error) {
	authors := []Author{}
	err := s.db.WithContext(ctx).
		Model(&Commit{}).
		Select("author_name AS name, author_email AS email, COUNT(*) AS commit_count").
		Where("repository_id = ?", repoID).
		Group("author_name, author_email").
		Order("commit_count DESC").
		Order("name ASC").
		Limit(limit).
		Scan(&authors).
		Error
	return authors, translate(err)
}

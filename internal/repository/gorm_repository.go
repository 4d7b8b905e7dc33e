package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// GormRepositoryStore is a GORM-based implementation of RepositoryStore
type GormRepositoryStore struct {
	db *gorm.DB
}

// NewGormRepositoryStore initializes a new GormRepositoryStore
func NewGormRepositoryStore(db *gorm.DB) RepositoryStore {
	return &GormRepositoryStore{db: db}
}

func (r *GormRepositoryStore) CreateRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	dbRepository := ToGormRepo(&repo)
	if err := r.db.WithContext(ctx).Create(dbRepository).Error; err != nil {
		return nil, translate(err)
	}
	return dbRepository.ToDomain()
}

func (r *GormRepositoryStore) RepositoryByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Repository, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	var repo Repository
	err := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).Limit(1).Find(&repo).Error
	if err != nil {
		return nil, translate(err)
	}
	if repo.ID == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return repo.ToDomain()
}

// RepositoriesByOwner lists an owner's repositories, newest first.
func (r *GormRepositoryStore) RepositoriesByOwner(ctx context.Context, ownerID string, query domain.PageQuery) (*domain.RepositoryPage, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	queryInfo, offset := getPaginationInfo(query)

	var count int64
	db := r.db.WithContext(ctx).Model(&Repository{}).Where("owner_id = ?", ownerID)
	if err := db.Count(&count).Error; err != nil {
		return nil, translate(err)
	}

	var dbRepositories []Repository
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(queryInfo.Limit).
		Find(&dbRepositories).Error
	if err != nil {
		return nil, translate(err)
	}

	repos := make([]domain.Repository, 0, len(dbRepositories))
	for _, dbRepository := range dbRepositories {
		repo, err := dbRepository.ToDomain()
		if err != nil {
			return nil, err
		}
		repos = append(repos, *repo)
	}

	return &domain.RepositoryPage{
		Repositories: repos,
		PageInfo:     getPagingInfo(queryInfo, count, len(repos)),
	}, nil
}

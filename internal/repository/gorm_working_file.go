package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

// GormWorkingFileStore is a GORM-based implementation of WorkingFileStore
type GormWorkingFileStore struct {
	db *gorm.DB
}

func NewGormWorkingFileStore(db *gorm.DB) WorkingFileStore {
	return &GormWorkingFileStore{db: db}
}

func (s *GormWorkingFileStore) WorkingFile(ctx context.Context, repoID, path string) (*domain.WorkingFile, error) {
	if err := errcodes.FromContext(ctx); err != nil {
		return nil, err
	}

	var file WorkingFile
	err := s.db.WithContext(ctx).Where("repository_id = ? AND path = ?", repoID, path).Limit(1).Find(&file).Error
	if err != nil {
		return nil, translate(err)
	}
	if file.Path == "" {
		return nil, errcodes.ErrNoRecordFound
	}
	return file.ToDomain()
}

// UpsertWorkingFile inserts the file or replaces the content at its path.
func (s *GormWorkingFileStore) UpsertWorkingFile(ctx context.Context, file domain.WorkingFile) error {
	if err := errcodes.FromContext(ctx); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "repository_id"}, {Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "checksum", "updated_at"}),
	}).Create(ToGormWorkingFile(&file)).Error
	return translate(err)
}

// DeleteWorkingFile removes a path. Deleting an absent path is not an error.
func (s *GormWorkingFileStore) DeleteWorkingFile(ctx context.Context, repoID, path string) error {
	err := s.db.WithContext(ctx).
		Where("repository_id = ? AND path = ?", repoID, path).
		Delete(&WorkingFile{}).Error
	return translate(err)
}

func (s *GormWorkingFileStore) WorkingFiles(ctx context.Context, repoID string) ([]domain.WorkingFile, error) {
	var rows []WorkingFile
	err := s.db.WithContext(ctx).Where("repository_id = ?", repoID).Order("path ASC").Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	files := make([]domain.WorkingFile, 0, len(rows))
	for _, row := range rows {
		f, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, nil
}

func (s *GormWorkingFileStore) WorkingPaths(ctx context.Context, repoID string) ([]string, error) {
	paths := []string{}
	err := s.db.WithContext(ctx).Model(&WorkingFile{}).
		Where("repository_id = ?", repoID).
		Order("path ASC").
		Pluck("path", &paths).Error
	if err != nil {
		return nil, translate(err)
	}
	return paths, nil
}

// ClearWorkingTree deletes every working file of a repository.
func (s *GormWorkingFileStore) ClearWorkingTree(ctx context.Context, repoID string) (int64, error) {
	res := s.db.WithContext(ctx).Where("repository_id = ?", repoID).Delete(&WorkingFile{})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormWorkingFileStore) SaveWorkingFiles(ctx context.Context, files []domain.WorkingFile) error {
	if len(files) == 0 {
		return nil
	}

	rows := make([]WorkingFile, 0, len(files))
	for i := range files {
		rows = append(rows, *ToGormWorkingFile(&files[i]))
	}
	return translate(s.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error)
}

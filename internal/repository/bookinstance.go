package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookInstanceRepository interface {
	Create(ctx context.Context, bi *model.BookInstance) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	List(ctx context.Context) ([]model.BookInstance, error)
	Update(ctx context.Context, bi *model.BookInstance) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type GormBookInstanceRepository struct {
	db *gorm.DB
}

func NewBookInstanceRepository(db *gorm.DB) *GormBookInstanceRepository {
	return &GormBookInstanceRepository{db: db}
}

func (r *GormBookInstanceRepository) Create(ctx context.Context, bi *model.BookInstance) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(bi).Error)
}

func (r *GormBookInstanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	var instance model.BookInstance
	if err := r.db.WithContext(ctx).
		Preload("Book").
		First(&instance, "id = ?", id).Error; err != nil {

		return nil, translate(err)
	}
	return &instance, nil
}

// List orders by due date, instances without one first.
func (r *GormBookInstanceRepository) List(ctx context.Context) ([]model.BookInstance, error) {
	var instances []model.BookInstance
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Order("due_back IS NOT NULL").
		Order("due_back ASC").
		Order("created_at ASC").
		Find(&instances).Error; err != nil {

		return nil, translate(err)
	}
	return instances, nil
}

func (r *GormBookInstanceRepository) Update(ctx context.Context, bi *model.BookInstance) error {
	result := r.db.WithContext(ctx).
		Model(&model.BookInstance{}).
		Where("id = ?", bi.ID).
		Updates(map[string]any{
			"book_id":  bi.BookID,
			"imprint":  bi.Imprint,
			"status":   bi.Status,
			"due_back": bi.DueBack,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookInstanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BookInstance{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.BookInstance{}).Count(&n).Error
	return n, translate(err)
}

func (r *GormBookInstanceRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BookInstance{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, translate(err)
}

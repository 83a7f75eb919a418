package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/gorm"
)

// Dependents finds the records that hold a reference to another record.
// There is one method per referencing pair.
type Dependents interface {
	BooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	BooksByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	InstancesByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)
}

type GormDependents struct {
	db *gorm.DB
}

func NewDependents(db *gorm.DB) *GormDependents {
	return &GormDependents{db: db}
}

func (d *GormDependents) BooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	books := []model.Book{}
	if err := d.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (d *GormDependents) BooksByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	db := d.db.WithContext(ctx)
	linked := db.Model(&model.BookGenre{}).Select("book_id").Where("genre_id = ?", genreID)

	books := []model.Book{}
	if err := db.
		Where("id IN (?)", linked).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (d *GormDependents) InstancesByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	instances := []model.BookInstance{}
	if err := d.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at ASC").
		Find(&instances).Error; err != nil {

		return nil, translate(err)
	}
	return instances, nil
}

// Store is the capability set the catalog works against.
type Store struct {
	Authors    AuthorRepository
	Genres     GenreRepository
	Books      BookRepository
	Instances  BookInstanceRepository
	Dependents Dependents
}

func NewStore(db *gorm.DB) Store {
	return Store{
		Authors:    NewAuthorRepository(db),
		Genres:     NewGenreRepository(db),
		Books:      NewGormBookRepository(db),
		Instances:  NewBookInstanceRepository(db),
		Dependents: NewDependents(db),
	}
}

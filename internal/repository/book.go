package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// withRelations loads the author and the genres in their stored order.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Genres", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Genres.Genre")
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(book).Error; err != nil {
			return err
		}
		return insertGenreLinks(tx, book)
	}))
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := withRelations(r.db.WithContext(ctx)).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, translate(err)
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := withRelations(r.db.WithContext(ctx)).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

// Update replaces the book's columns and its genre list.
func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.Book{}).
			Where("id = ?", book.ID).
			Updates(map[string]any{
				"title":     book.Title,
				"author_id": book.AuthorID,
				"summary":   book.Summary,
				"isbn":      book.ISBN,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("book_id = ?", book.ID).Delete(&model.BookGenre{}).Error; err != nil {
			return err
		}
		return insertGenreLinks(tx, book)
	}))
}

func insertGenreLinks(tx *gorm.DB, book *model.Book) error {
	if len(book.Genres) == 0 {
		return nil
	}
	for i := range book.Genres {
		book.Genres[i].BookID = book.ID
		book.Genres[i].Position = i
	}
	return tx.Omit(clause.Associations).Create(&book.Genres).Error
}

func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.BookGenre{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Book{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}

func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&n).Error
	return n, translate(err)
}

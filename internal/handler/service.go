package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
)

// The handlers depend on these narrow views of *catalog.Service so tests
// can substitute fakes.

type AuthorService interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*catalog.AuthorDetail, error)
	CreateAuthor(ctx context.Context, in catalog.AuthorInput) (*model.Author, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, in catalog.AuthorInput) (*model.Author, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
	AuthorDeletePreview(ctx context.Context, id uuid.UUID) (*catalog.DeletePreview[model.Author, model.Book], error)
}

type GenreService interface {
	ListGenres(ctx context.Context) ([]model.Genre, error)
	GetGenre(ctx context.Context, id uuid.UUID) (*catalog.GenreDetail, error)
	CreateGenre(ctx context.Context, in catalog.GenreInput) (*model.Genre, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, in catalog.GenreInput) (*model.Genre, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error
	GenreDeletePreview(ctx context.Context, id uuid.UUID) (*catalog.DeletePreview[model.Genre, model.Book], error)
}

type BookService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*catalog.BookDetail, error)
	CreateBook(ctx context.Context, in catalog.BookInput) (*model.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, in catalog.BookInput) (*model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	BookDeletePreview(ctx context.Context, id uuid.UUID) (*catalog.DeletePreview[model.Book, model.BookInstance], error)
	BookForm(ctx context.Context) (*catalog.BookForm, error)
}

type BookInstanceService interface {
	ListBookInstances(ctx context.Context) ([]model.BookInstance, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	CreateBookInstance(ctx context.Context, in catalog.BookInstanceInput) (*model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, id uuid.UUID, in catalog.BookInstanceInput) (*model.BookInstance, error)
	DeleteBookInstance(ctx context.Context, id uuid.UUID) error
	BookInstanceDeletePreview(ctx context.Context, id uuid.UUID) (*catalog.DeletePreview[model.BookInstance, struct{}], error)
	BookInstanceForm(ctx context.Context) ([]model.Book, error)
}

type SummaryService interface {
	Summary(ctx context.Context) (*catalog.Summary, error)
}

type CatalogService interface {
	AuthorService
	GenreService
	BookService
	BookInstanceService
	SummaryService
}

var _ CatalogService = (*catalog.Service)(nil)

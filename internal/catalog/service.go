// Package catalog holds the rules of the library catalog: how candidate
// records are built and validated from raw input, when a create is a
// duplicate, and when a delete must be refused because other records
// still reference the target.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store repository.Store

	authorGuard   deleteGuard[model.Author, model.Book]
	genreGuard    deleteGuard[model.Genre, model.Book]
	bookGuard     deleteGuard[model.Book, model.BookInstance]
	instanceGuard deleteGuard[model.BookInstance, struct{}]
}

func NewService(store repository.Store) *Service {
	s := &Service{store: store}

	s.authorGuard = deleteGuard[model.Author, model.Book]{
		kind:       "author",
		find:       store.Authors.FindByID,
		dependents: store.Dependents.BooksByAuthor,
		remove:     store.Authors.Delete,
	}
	s.genreGuard = deleteGuard[model.Genre, model.Book]{
		kind:       "genre",
		find:       store.Genres.FindByID,
		dependents: store.Dependents.BooksByGenre,
		remove:     store.Genres.Delete,
	}
	s.bookGuard = deleteGuard[model.Book, model.BookInstance]{
		kind:       "book",
		find:       store.Books.FindByID,
		dependents: store.Dependents.InstancesByBook,
		remove:     store.Books.Delete,
	}
	s.instanceGuard = deleteGuard[model.BookInstance, struct{}]{
		kind:   "book instance",
		find:   store.Instances.FindByID,
		remove: store.Instances.Delete,
	}

	return s
}

// Summary counts the records in the catalog.
type Summary struct {
	Books                  int64
	BookInstances          int64
	AvailableBookInstances int64
	Authors                int64
	Genres                 int64
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var sum Summary

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			*dst = n
			return err
		})
	}
	count(&sum.Books, s.store.Books.Count)
	count(&sum.BookInstances, s.store.Instances.Count)
	count(&sum.AvailableBookInstances, func(ctx context.Context) (int64, error) {
		return s.store.Instances.CountByStatus(ctx, model.StatusAvailable)
	})
	count(&sum.Authors, s.store.Authors.Count)
	count(&sum.Genres, s.store.Genres.Count)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sum, nil
}

// BookForm is the data a client needs to fill in a book.
type BookForm struct {
	Authors []model.Author
	Genres  []model.Genre
}

func (s *Service) BookForm(ctx context.Context) (*BookForm, error) {
	var form BookForm

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		form.Authors, err = s.store.Authors.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		form.Genres, err = s.store.Genres.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &form, nil
}

// BookInstanceForm lists the books a copy can be registered against.
func (s *Service) BookInstanceForm(ctx context.Context) ([]model.Book, error) {
	return s.store.Books.List(ctx)
}

func missingRef(field, message string) validation.FieldError {
	return validation.FieldError{Field: field, Rule: "exists", Message: message}
}

// lookupRef reports whether find locates id; store failures other than a
// missing record are returned as errors.
func lookupRef[T any](ctx context.Context, find func(context.Context, uuid.UUID) (*T, error), id uuid.UUID) (bool, error) {
	_, err := find(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return false, err
}

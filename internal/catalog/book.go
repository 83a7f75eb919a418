package catalog

import (
	"context"
	"errors"
	"fmt"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
	"golang.org/x/sync/errgroup"
)

type BookInput struct {
	Title   string
	Author  string
	Summary string
	ISBN    string
	Genre   []string
}

type BookDetail struct {
	Book      model.Book
	Instances []model.BookInstance
}

func genreField(i int) string {
	return fmt.Sprintf("genre[%d]", i)
}

// bookCandidate is a candidate book together with the input position of
// each genre id, so errors name the entry the client sent.
type bookCandidate struct {
	book       model.Book
	genreIndex map[uuid.UUID]int
}

// NewBook builds a candidate book. Empty genre entries are dropped and
// repeated genre ids collapse to their first occurrence. Genre errors are
// numbered by the entry's position in the input.
func NewBook(in BookInput) (model.Book, []validation.FieldError) {
	c, errs := newBookCandidate(in)
	return c.book, errs
}

func newBookCandidate(in BookInput) (bookCandidate, []validation.FieldError) {
	in.Title = validation.Trim(in.Title)
	in.Author = validation.Trim(in.Author)
	in.Summary = validation.Trim(in.Summary)
	in.ISBN = validation.Trim(in.ISBN)

	fields := []validation.Field{
		validation.NewField("title", in.Title, ozzo.Required.Error("Title must not be empty.")),
		validation.NewField("author", in.Author,
			ozzo.Required.Error("Author must not be empty."),
			validation.ID("Author must be a valid id."),
		),
		validation.NewField("summary", in.Summary, ozzo.Required.Error("Summary must not be empty.")),
		validation.NewField("isbn", in.ISBN, ozzo.Required.Error("ISBN must not be empty")),
	}

	var (
		ids        = make([]uuid.UUID, 0, len(in.Genre))
		genreIndex = make(map[uuid.UUID]int, len(in.Genre))
	)
	for i, g := range validation.TrimAll(in.Genre) {
		if g == "" {
			continue
		}
		fields = append(fields, validation.NewField(genreField(i), g, validation.ID("Genre must be a valid id.")))

		id, err := uuid.Parse(g)
		if err != nil {
			continue
		}
		if _, seen := genreIndex[id]; !seen {
			genreIndex[id] = i
		}
		ids = append(ids, id)
	}
	errs := validation.Check(fields...)

	book := model.Book{
		Title:   validation.Escape(in.Title),
		Summary: validation.Escape(in.Summary),
		ISBN:    validation.Escape(in.ISBN),
	}
	if id, err := uuid.Parse(in.Author); err == nil {
		book.AuthorID = id
	}
	book.SetGenreIDs(ids)

	return bookCandidate{book: book, genreIndex: genreIndex}, errs
}

// bookReferences reports a field error for the author and for every
// genre the store does not hold.
func (s *Service) bookReferences(ctx context.Context, c bookCandidate) ([]validation.FieldError, error) {
	book := c.book
	var (
		authorFound bool
		genres      []model.Genre
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authorFound, err = lookupRef(gctx, s.store.Authors.FindByID, book.AuthorID)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = s.store.Genres.FindByIDs(gctx, book.GenreIDs())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check book references: %w", err)
	}

	var errs []validation.FieldError
	if !authorFound {
		errs = append(errs, missingRef("author", "Author not found."))
	}

	known := make(map[uuid.UUID]struct{}, len(genres))
	for _, genre := range genres {
		known[genre.ID] = struct{}{}
	}
	for _, id := range book.GenreIDs() {
		if _, ok := known[id]; !ok {
			errs = append(errs, missingRef(genreField(c.genreIndex[id]), "Genre not found."))
		}
	}
	return errs, nil
}

// checkBook runs the field rules and, when they pass, the reference
// checks. A non-nil error is either a store failure or a ValidationError.
func (s *Service) checkBook(ctx context.Context, c bookCandidate, errs []validation.FieldError) error {
	if len(errs) > 0 {
		return &ValidationError[model.Book]{Errors: errs, Candidate: c.book}
	}

	refErrs, err := s.bookReferences(ctx, c)
	if err != nil {
		return err
	}
	if len(refErrs) > 0 {
		return &ValidationError[model.Book]{Errors: refErrs, Candidate: c.book}
	}
	return nil
}

// referenceLost turns a foreign key failure into the validation error a
// fresh reference check produces.
func (s *Service) referenceLost(ctx context.Context, c bookCandidate, err error) error {
	if !errors.Is(err, repository.ErrReferenced) {
		return err
	}
	if cerr := s.checkBook(ctx, c, nil); cerr != nil {
		return cerr
	}
	return err
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.store.Books.List(ctx)
}

// GetBook returns the book with its author and genres, and its copies.
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*BookDetail, error) {
	var d BookDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		book, err := s.store.Books.FindByID(gctx, id)
		if err != nil {
			return err
		}
		d.Book = *book
		return nil
	})
	g.Go(func() error {
		var err error
		d.Instances, err = s.store.Dependents.InstancesByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapStoreErr("book", id, err)
	}
	return &d, nil
}

func (s *Service) CreateBook(ctx context.Context, in BookInput) (*model.Book, error) {
	c, errs := newBookCandidate(in)
	if err := s.checkBook(ctx, c, errs); err != nil {
		return nil, err
	}

	book := c.book
	if err := s.store.Books.Create(ctx, &book); err != nil {
		return nil, fmt.Errorf("create book: %w", s.referenceLost(ctx, c, err))
	}

	stored, err := s.store.Books.FindByID(ctx, book.ID)
	if err != nil {
		return nil, wrapStoreErr("book", book.ID, err)
	}
	return stored, nil
}

func (s *Service) UpdateBook(ctx context.Context, id uuid.UUID, in BookInput) (*model.Book, error) {
	c, errs := newBookCandidate(in)
	c.book.ID = id
	for i := range c.book.Genres {
		c.book.Genres[i].BookID = id
	}
	if err := s.checkBook(ctx, c, errs); err != nil {
		return nil, err
	}

	book := c.book
	if err := s.store.Books.Update(ctx, &book); err != nil {
		return nil, wrapStoreErr("book", id, s.referenceLost(ctx, c, err))
	}

	stored, err := s.store.Books.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr("book", id, err)
	}
	return stored, nil
}

func (s *Service) BookDeletePreview(ctx context.Context, id uuid.UUID) (*DeletePreview[model.Book, model.BookInstance], error) {
	return s.bookGuard.check(ctx, id)
}

// DeleteBook removes the book unless copies of it are still registered.
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return s.bookGuard.delete(ctx, id)
}

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

const (
	minGenreNameLength = 3
	maxGenreNameLength = 100
)

type GenreInput struct {
	Name string
}

type GenreDetail struct {
	Genre model.Genre
	Books []model.Book
}

func NewGenre(in GenreInput) (model.Genre, []validation.FieldError) {
	name := validation.Trim(in.Name)

	const msg = "Genre name must contain at least 3 characters"
	errs := validation.Check(
		validation.NewField("name", name,
			ozzo.Required.Error(msg),
			ozzo.RuneLength(minGenreNameLength, 0).Error(msg),
			ozzo.RuneLength(0, maxGenreNameLength).Error(fmt.Sprintf("Genre name must not exceed %d characters", maxGenreNameLength)),
		),
	)

	return model.Genre{Name: validation.Escape(name)}, errs
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.store.Genres.List(ctx)
}

func (s *Service) GetGenre(ctx context.Context, id uuid.UUID) (*GenreDetail, error) {
	var d GenreDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		genre, err := s.store.Genres.FindByID(gctx, id)
		if err != nil {
			return err
		}
		d.Genre = *genre
		return nil
	})
	g.Go(func() error {
		var err error
		d.Books, err = s.store.Dependents.BooksByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapStoreErr("genre", id, err)
	}
	return &d, nil
}

// duplicateGenre returns the stored genre named like candidate, ignoring
// the record with id self.
func (s *Service) duplicateGenre(ctx context.Context, candidate model.Genre, self uuid.UUID) (*model.Genre, error) {
	existing, err := s.store.Genres.FindByName(ctx, candidate.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find genre by name: %w", err)
	}
	if existing.ID == self {
		return nil, nil
	}
	return existing, nil
}

// CreateGenre stores a new genre. A genre with the same name is never
// stored twice: the existing one is returned inside a ConflictError.
func (s *Service) CreateGenre(ctx context.Context, in GenreInput) (*model.Genre, error) {
	genre, errs := NewGenre(in)
	if len(errs) > 0 {
		return nil, &ValidationError[model.Genre]{Errors: errs, Candidate: genre}
	}

	existing, err := s.duplicateGenre(ctx, genre, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError[model.Genre]{Existing: *existing}
	}

	if err := s.store.Genres.Create(ctx, &genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}
	return &genre, nil
}

func (s *Service) UpdateGenre(ctx context.Context, id uuid.UUID, in GenreInput) (*model.Genre, error) {
	genre, errs := NewGenre(in)
	genre.ID = id
	if len(errs) > 0 {
		return nil, &ValidationError[model.Genre]{Errors: errs, Candidate: genre}
	}

	existing, err := s.duplicateGenre(ctx, genre, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError[model.Genre]{Existing: *existing}
	}

	if err := s.store.Genres.Update(ctx, &genre); err != nil {
		return nil, wrapStoreErr("genre", id, err)
	}

	stored, err := s.store.Genres.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr("genre", id, err)
	}
	return stored, nil
}

func (s *Service) GenreDeletePreview(ctx context.Context, id uuid.UUID) (*DeletePreview[model.Genre, model.Book], error) {
	return s.genreGuard.check(ctx, id)
}

// DeleteGenre removes the genre unless a book is still filed under it.
func (s *Service) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return s.genreGuard.delete(ctx, id)
}

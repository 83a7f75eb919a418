package catalog

import (
	"context"
	"fmt"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/validation"
	"golang.org/x/sync/errgroup"
)

const maxNameLength = 100

type AuthorInput struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
}

type AuthorDetail struct {
	Author model.Author
	Books  []model.Book
}

func isoDate(s string) error {
	_, err := model.ParseISODate(s)
	return err
}

// optionalDate returns nil for an empty or unparsable value.
func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := model.ParseISODate(s)
	if err != nil {
		return nil
	}
	return &t
}

func nameRules(label string) []ozzo.Rule {
	return []ozzo.Rule{
		ozzo.Required.Error(label + " must be specified."),
		ozzo.RuneLength(0, maxNameLength).Error(fmt.Sprintf("%s must not exceed %d characters.", label, maxNameLength)),
		is.Alphanumeric.Error(label + " has non-alphanumeric characters."),
	}
}

// NewAuthor builds a candidate author from raw input. The candidate is
// returned even when the input is invalid so it can be echoed back.
func NewAuthor(in AuthorInput) (model.Author, []validation.FieldError) {
	in.FirstName = validation.Trim(in.FirstName)
	in.FamilyName = validation.Trim(in.FamilyName)
	in.DateOfBirth = validation.Trim(in.DateOfBirth)
	in.DateOfDeath = validation.Trim(in.DateOfDeath)

	errs := validation.Check(
		validation.NewField("first_name", in.FirstName, nameRules("First name")...),
		validation.NewField("family_name", in.FamilyName, nameRules("Family name")...),
		validation.NewField("date_of_birth", in.DateOfBirth, validation.ISODate(isoDate, "Invalid date of birth")),
		validation.NewField("date_of_death", in.DateOfDeath, validation.ISODate(isoDate, "Invalid date of death")),
	)

	return model.Author{
		FirstName:   validation.Escape(in.FirstName),
		FamilyName:  validation.Escape(in.FamilyName),
		DateOfBirth: optionalDate(in.DateOfBirth),
		DateOfDeath: optionalDate(in.DateOfDeath),
	}, errs
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.store.Authors.List(ctx)
}

// GetAuthor returns the author and the books written by them.
func (s *Service) GetAuthor(ctx context.Context, id uuid.UUID) (*AuthorDetail, error) {
	var d AuthorDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.store.Authors.FindByID(gctx, id)
		if err != nil {
			return err
		}
		d.Author = *a
		return nil
	})
	g.Go(func() error {
		var err error
		d.Books, err = s.store.Dependents.BooksByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapStoreErr("author", id, err)
	}
	return &d, nil
}

func (s *Service) CreateAuthor(ctx context.Context, in AuthorInput) (*model.Author, error) {
	author, errs := NewAuthor(in)
	if len(errs) > 0 {
		return nil, &ValidationError[model.Author]{Errors: errs, Candidate: author}
	}

	if err := s.store.Authors.Create(ctx, &author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return &author, nil
}

// UpdateAuthor replaces every field of the author stored under id.
func (s *Service) UpdateAuthor(ctx context.Context, id uuid.UUID, in AuthorInput) (*model.Author, error) {
	author, errs := NewAuthor(in)
	author.ID = id
	if len(errs) > 0 {
		return nil, &ValidationError[model.Author]{Errors: errs, Candidate: author}
	}

	if err := s.store.Authors.Update(ctx, &author); err != nil {
		return nil, wrapStoreErr("author", id, err)
	}

	stored, err := s.store.Authors.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr("author", id, err)
	}
	return stored, nil
}

func (s *Service) AuthorDeletePreview(ctx context.Context, id uuid.UUID) (*DeletePreview[model.Author, model.Book], error) {
	return s.authorGuard.check(ctx, id)
}

// DeleteAuthor removes the author unless a book still references them.
func (s *Service) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return s.authorGuard.delete(ctx, id)
}

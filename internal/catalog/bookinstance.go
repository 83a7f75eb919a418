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
)

type BookInstanceInput struct {
	Book    string
	Imprint string
	Status  string
	DueBack string
}

// NewBookInstance builds a candidate copy. An empty status falls back to
// Maintenance.
func NewBookInstance(in BookInstanceInput) (model.BookInstance, []validation.FieldError) {
	in.Book = validation.Trim(in.Book)
	in.Imprint = validation.Trim(in.Imprint)
	in.Status = validation.Trim(in.Status)
	in.DueBack = validation.Trim(in.DueBack)

	errs := validation.Check(
		validation.NewField("book", in.Book,
			ozzo.Required.Error("Book must be specified"),
			validation.ID("Book must be a valid id."),
		),
		validation.NewField("imprint", in.Imprint, ozzo.Required.Error("Imprint must be specified")),
		validation.NewField("due_back", in.DueBack, validation.ISODate(isoDate, "Invalid date")),
	)

	bi := model.BookInstance{
		Imprint: validation.Escape(in.Imprint),
		Status:  validation.Escape(in.Status),
		DueBack: optionalDate(in.DueBack),
	}
	if bi.Status == "" {
		bi.Status = model.StatusMaintenance
	}
	if id, err := uuid.Parse(in.Book); err == nil {
		bi.BookID = id
	}
	return bi, errs
}

func (s *Service) checkBookInstance(ctx context.Context, bi model.BookInstance, errs []validation.FieldError) error {
	if len(errs) > 0 {
		return &ValidationError[model.BookInstance]{Errors: errs, Candidate: bi}
	}

	found, err := lookupRef(ctx, s.store.Books.FindByID, bi.BookID)
	if err != nil {
		return fmt.Errorf("check book instance references: %w", err)
	}
	if !found {
		return &ValidationError[model.BookInstance]{
			Errors:    []validation.FieldError{missingRef("book", "Book not found.")},
			Candidate: bi,
		}
	}
	return nil
}

func (s *Service) ListBookInstances(ctx context.Context) ([]model.BookInstance, error) {
	return s.store.Instances.List(ctx)
}

func (s *Service) GetBookInstance(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	bi, err := s.store.Instances.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr("book instance", id, err)
	}
	return bi, nil
}

func (s *Service) CreateBookInstance(ctx context.Context, in BookInstanceInput) (*model.BookInstance, error) {
	bi, errs := NewBookInstance(in)
	if err := s.checkBookInstance(ctx, bi, errs); err != nil {
		return nil, err
	}

	if err := s.store.Instances.Create(ctx, &bi); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			if cerr := s.checkBookInstance(ctx, bi, nil); cerr != nil {
				return nil, cerr
			}
		}
		return nil, fmt.Errorf("create book instance: %w", err)
	}

	stored, err := s.store.Instances.FindByID(ctx, bi.ID)
	if err != nil {
		return nil, wrapStoreErr("book instance", bi.ID, err)
	}
	return stored, nil
}

func (s *Service) UpdateBookInstance(ctx context.Context, id uuid.UUID, in BookInstanceInput) (*model.BookInstance, error) {
	bi, errs := NewBookInstance(in)
	bi.ID = id
	if err := s.checkBookInstance(ctx, bi, errs); err != nil {
		return nil, err
	}

	if err := s.store.Instances.Update(ctx, &bi); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			if cerr := s.checkBookInstance(ctx, bi, nil); cerr != nil {
				return nil, cerr
			}
		}
		return nil, wrapStoreErr("book instance", id, err)
	}

	stored, err := s.store.Instances.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr("book instance", id, err)
	}
	return stored, nil
}

func (s *Service) BookInstanceDeletePreview(ctx context.Context, id uuid.UUID) (*DeletePreview[model.BookInstance, struct{}], error) {
	return s.instanceGuard.check(ctx, id)
}

// DeleteBookInstance removes the copy. Nothing references a copy, so only
// a missing record stops it.
func (s *Service) DeleteBookInstance(ctx context.Context, id uuid.UUID) error {
	return s.instanceGuard.delete(ctx, id)
}

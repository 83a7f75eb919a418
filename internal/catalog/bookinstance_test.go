package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookInstance(t *testing.T) {
	bookID := uuid.New()

	bi, errs := NewBookInstance(BookInstanceInput{Book: bookID.String(), Imprint: " Ace <1965> ", DueBack: "2026-01-02"})
	require.Empty(t, errs)
	assert.Equal(t, bookID, bi.BookID)
	assert.Equal(t, "Ace &lt;1965&gt;", bi.Imprint)
	assert.Equal(t, model.StatusMaintenance, bi.Status)
	require.NotNil(t, bi.DueBack)

	_, errs = NewBookInstance(BookInstanceInput{DueBack: "soon"})
	assert.Equal(t, []validation.FieldError{
		{Field: "book", Rule: "required", Message: "Book must be specified"},
		{Field: "imprint", Rule: "required", Message: "Imprint must be specified"},
		{Field: "due_back", Rule: "iso8601", Message: "Invalid date"},
	}, errs)

	_, errs = NewBookInstance(BookInstanceInput{Book: "42", Imprint: "Ace"})
	assert.Equal(t, []validation.FieldError{
		{Field: "book", Rule: "id", Message: "Book must be a valid id."},
	}, errs)
}

func TestNewBookInstance_StatusNotRestricted(t *testing.T) {
	bi, errs := NewBookInstance(BookInstanceInput{Book: uuid.NewString(), Imprint: "Ace", Status: "Lost"})
	require.Empty(t, errs)
	assert.Equal(t, "Lost", bi.Status)
}

func TestCreateBookInstance(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	a := mustAuthor(t, s, "Frank", "Herbert")
	book := mustBook(t, s, "Dune", a)

	bi, err := s.CreateBookInstance(ctx, BookInstanceInput{Book: book.ID.String(), Imprint: "Ace", Status: model.StatusLoaned, DueBack: "2026-05-01"})
	require.NoError(t, err)
	require.NotNil(t, bi.Book)
	assert.Equal(t, "Dune", bi.Book.Title)
	assert.Equal(t, model.StatusLoaned, bi.Status)

	_, err = s.CreateBookInstance(ctx, BookInstanceInput{Book: uuid.NewString(), Imprint: "Ace"})
	verr := validationErrors[model.BookInstance](t, err)
	assert.Equal(t, []validation.FieldError{
		{Field: "book", Rule: "exists", Message: "Book not found."},
	}, verr.Errors)
}

func TestListBookInstances_UnsetDueDateFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	a := mustAuthor(t, s, "Frank", "Herbert")
	book := mustBook(t, s, "Dune", a)
	for _, due := range []string{"2026-03-01", "", "2026-01-01"} {
		_, err := s.CreateBookInstance(ctx, BookInstanceInput{Book: book.ID.String(), Imprint: "Ace", DueBack: due})
		require.NoError(t, err)
	}

	list, err := s.ListBookInstances(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Nil(t, list[0].DueBack)
	assert.Equal(t, 1, int(list[1].DueBack.Month()))
	assert.Equal(t, 3, int(list[2].DueBack.Month()))
}

func TestUpdateBookInstance(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	a := mustAuthor(t, s, "Frank", "Herbert")
	book := mustBook(t, s, "Dune", a)
	bi, err := s.CreateBookInstance(ctx, BookInstanceInput{Book: book.ID.String(), Imprint: "Ace", DueBack: "2026-05-01"})
	require.NoError(t, err)

	updated, err := s.UpdateBookInstance(ctx, bi.ID, BookInstanceInput{Book: book.ID.String(), Imprint: "Chilton", Status: model.StatusAvailable})
	require.NoError(t, err)
	assert.Equal(t, bi.ID, updated.ID)
	assert.Equal(t, "Chilton", updated.Imprint)
	assert.Equal(t, model.StatusAvailable, updated.Status)
	assert.Nil(t, updated.DueBack)

	_, err = s.UpdateBookInstance(ctx, uuid.New(), BookInstanceInput{Book: book.ID.String(), Imprint: "Ace"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBookInstance_AlwaysProceeds(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	a := mustAuthor(t, s, "Frank", "Herbert")
	book := mustBook(t, s, "Dune", a)
	bi, err := s.CreateBookInstance(ctx, BookInstanceInput{Book: book.ID.String(), Imprint: "Ace"})
	require.NoError(t, err)

	p, err := s.BookInstanceDeletePreview(ctx, bi.ID)
	require.NoError(t, err)
	assert.Equal(t, Proceed, p.Decision)

	require.NoError(t, s.DeleteBookInstance(ctx, bi.ID))

	_, err = s.GetBookInstance(ctx, bi.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteBookInstance(ctx, bi.ID), ErrNotFound)
}

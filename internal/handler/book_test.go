package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/testutil"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

func TestCreateBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	sf := seedGenre(t, db, "Science Fiction")
	adv := seedGenre(t, db, "Adventure")

	w := doRequest(t, router, http.MethodPost, "/catalog/books", map[string]any{
		"title":   "Dune",
		"author":  author.ID.String(),
		"summary": "Spice.",
		"isbn":    "9780441013593",
		"genre":   []string{sf.ID.String(), adv.ID.String()},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp CreateBookResponse
	decode(t, w, &resp)

	if resp.Message != "Book created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Book.Author.Name != "Herbert, Frank" {
		t.Errorf("expected populated author, got %+v", resp.Book.Author)
	}
	if len(resp.Book.Genre) != 2 || resp.Book.Genre[0].Name != "Science Fiction" || resp.Book.Genre[1].Name != "Adventure" {
		t.Errorf("expected genres in request order, got %+v", resp.Book.Genre)
	}
}

func TestCreateBook_SingleGenreString(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	genre := seedGenre(t, db, "Science Fiction")

	w := doRequest(t, router, http.MethodPost, "/catalog/books", map[string]any{
		"title":   "Dune",
		"author":  author.ID.String(),
		"summary": "Spice.",
		"isbn":    "978",
		"genre":   genre.ID.String(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp CreateBookResponse
	decode(t, w, &resp)
	if len(resp.Book.Genre) != 1 || resp.Book.Genre[0].ID != genre.ID.String() {
		t.Errorf("expected single genre, got %+v", resp.Book.Genre)
	}
}

func TestCreateBook_ValidationError(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodPost, "/catalog/books", map[string]any{
		"title":  "Dune",
		"author": "42",
		"genre":  []string{"x"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Errors []validation.FieldError `json:"errors"`
		Book   Book                    `json:"book"`
	}
	decode(t, w, &resp)

	want := []string{
		"Author must be a valid id.",
		"Summary must not be empty.",
		"ISBN must not be empty",
		"Genre must be a valid id.",
	}
	if len(resp.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %+v", len(want), resp.Errors)
	}
	for i, msg := range want {
		if resp.Errors[i].Message != msg {
			t.Errorf("error %d: expected %q, got %q", i, msg, resp.Errors[i].Message)
		}
	}
	if resp.Book.Title != "Dune" {
		t.Errorf("expected candidate echoed, got %+v", resp.Book)
	}
}

func TestCreateBook_UnknownAuthor(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodPost, "/catalog/books", BookRequest{
		Title: "Dune", Author: uuid.NewString(), Summary: "s", ISBN: "i",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if len(resp.Errors) != 1 || resp.Errors[0].Message != "Author not found." {
		t.Errorf("unexpected errors %+v", resp.Errors)
	}
}

func TestListBooks_InternalError_Returns500(t *testing.T) {
	router := setupTestRouterWithService(&fakeService{
		ListBooksFn: func(ctx context.Context) ([]model.Book, error) {
			return nil, errors.New("forced list error")
		},
	})

	w := doRequest(t, router, http.MethodGet, "/catalog/books", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if resp.Code != "BOOK_LIST_FAILED" {
		t.Errorf("expected error code BOOK_LIST_FAILED, got %q", resp.Code)
	}
}

func TestGetBookByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	book := seedBook(t, db, author, "Dune")
	seedBookInstance(t, db, book, model.StatusAvailable)

	w := doRequest(t, router, http.MethodGet, "/catalog/books/"+book.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BookDetailResponse
	decode(t, w, &resp)
	if resp.Book.Title != "Dune" {
		t.Errorf("expected title Dune, got %q", resp.Book.Title)
	}
	if len(resp.Instances) != 1 || resp.Instances[0].Status != model.StatusAvailable {
		t.Errorf("expected one available copy, got %+v", resp.Instances)
	}
}

func TestUpdateBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	genre := seedGenre(t, db, "Science Fiction")
	book := seedBook(t, db, author, "Dune", genre)

	w := doRequest(t, router, http.MethodPut, "/catalog/books/"+book.ID.String(), BookRequest{
		Title: "Dune Messiah", Author: author.ID.String(), Summary: "s", ISBN: "i",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Book
	decode(t, w, &resp)
	if resp.ID != book.ID.String() || resp.Title != "Dune Messiah" {
		t.Errorf("unexpected book %+v", resp)
	}
	if len(resp.Genre) != 0 {
		t.Errorf("expected genres cleared, got %+v", resp.Genre)
	}
}

func TestDeleteBook_BlockedByInstances(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	book := seedBook(t, db, author, "Dune")
	bi := seedBookInstance(t, db, book, model.StatusLoaned)

	w := doRequest(t, router, http.MethodDelete, "/catalog/books/"+book.ID.String(), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Instances []BookInstance `json:"book_instances"`
	}
	decode(t, w, &resp)
	if len(resp.Instances) != 1 || resp.Instances[0].ID != bi.ID.String() {
		t.Errorf("expected blocking copy %s, got %+v", bi.ID, resp.Instances)
	}
}

func TestBookForm(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	seedAuthor(t, db, "Frank", "Herbert")
	seedGenre(t, db, "Science Fiction")

	w := doRequest(t, router, http.MethodGet, "/catalog/books/form", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp BookFormResponse
	decode(t, w, &resp)
	if len(resp.Authors) != 1 || len(resp.Genres) != 1 {
		t.Errorf("unexpected form %+v", resp)
	}
}

func TestBookForm_InternalError_Returns500(t *testing.T) {
	router := setupTestRouterWithService(&fakeService{
		BookFormFn: func(ctx context.Context) (*catalog.BookForm, error) {
			return nil, errors.New("forced form error")
		},
	})

	w := doRequest(t, router, http.MethodGet, "/catalog/books/form", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

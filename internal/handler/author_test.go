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

type authorValidationResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
	Author  Author                  `json:"author"`
}

func TestCreateAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	body := AuthorRequest{
		FirstName:   "Frank",
		FamilyName:  "Herbert",
		DateOfBirth: "1920-10-08",
		DateOfDeath: "1986-02-11",
	}

	w := doRequest(t, router, http.MethodPost, "/catalog/authors", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp CreateAuthorResponse
	decode(t, w, &resp)

	if resp.Message != "Author created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Author.ID == "" {
		t.Fatalf("expected non-empty ID")
	}
	if resp.Author.Name != "Herbert, Frank" {
		t.Errorf("expected name %q, got %q", "Herbert, Frank", resp.Author.Name)
	}
	if resp.Author.Lifespan != "October 8, 1920 – February 11, 1986 (65 years)" {
		t.Errorf("unexpected lifespan %q", resp.Author.Lifespan)
	}
	if resp.Author.URL != "/catalog/authors/"+resp.Author.ID {
		t.Errorf("unexpected url %q", resp.Author.URL)
	}

	var stored model.Author
	if err := db.First(&stored, "id = ?", resp.Author.ID).Error; err != nil {
		t.Fatalf("expected author in db, got error: %v", err)
	}
	if stored.FamilyName != "Herbert" {
		t.Errorf("expected stored family name %q, got %q", "Herbert", stored.FamilyName)
	}
}

func TestCreateAuthor_ValidationError(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodPost, "/catalog/authors", map[string]any{
		"first_name":    "",
		"family_name":   "O'Brien",
		"date_of_birth": "not-a-date",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp authorValidationResponse
	decode(t, w, &resp)

	if resp.Code != "VALIDATION_FAILED" {
		t.Errorf("expected code VALIDATION_FAILED, got %q", resp.Code)
	}

	want := []string{"first_name", "family_name", "date_of_birth"}
	if len(resp.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %+v", len(want), resp.Errors)
	}
	for i, field := range want {
		if resp.Errors[i].Field != field {
			t.Errorf("error %d: expected field %q, got %q", i, field, resp.Errors[i].Field)
		}
	}

	if resp.Author.FamilyName != "O&#x27;Brien" {
		t.Errorf("expected escaped candidate family name, got %q", resp.Author.FamilyName)
	}
	if resp.Author.ID != "" {
		t.Errorf("expected unsaved candidate without id, got %q", resp.Author.ID)
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no authors stored, got %d", count)
	}
}

func TestCreateAuthor_MalformedJSON(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodPost, "/catalog/authors", `{"first_name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if resp.Code != "INVALID_REQUEST" {
		t.Errorf("expected code INVALID_REQUEST, got %q", resp.Code)
	}
}

func TestCreateAuthor_InternalError_Returns500(t *testing.T) {
	router := setupTestRouterWithService(&fakeService{
		CreateAuthorFn: func(ctx context.Context, in catalog.AuthorInput) (*model.Author, error) {
			return nil, errors.New("forced create error")
		},
	})

	w := doRequest(t, router, http.MethodPost, "/catalog/authors", AuthorRequest{FirstName: "Frank", FamilyName: "Herbert"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)

	if resp.Code != "AUTHOR_CREATE_FAILED" {
		t.Errorf("expected error code AUTHOR_CREATE_FAILED, got %q", resp.Code)
	}
	if resp.Message != "failed to create author" {
		t.Errorf("expected message %q, got %q", "failed to create author", resp.Message)
	}
}

func TestListAuthors_SortedByFamilyName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	seedAuthor(t, db, "Ursula", "LeGuin")
	seedAuthor(t, db, "Isaac", "Asimov")

	w := doRequest(t, router, http.MethodGet, "/catalog/authors", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp AuthorListResponse
	decode(t, w, &resp)

	if len(resp.Authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(resp.Authors))
	}
	if resp.Authors[0].FamilyName != "Asimov" || resp.Authors[1].FamilyName != "LeGuin" {
		t.Errorf("unexpected order: %+v", resp.Authors)
	}
}

func TestListAuthors_Empty(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodGet, "/catalog/authors", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"author_list":[]}` {
		t.Errorf("expected empty list, got %s", w.Body.String())
	}
}

func TestListAuthors_InternalError_Returns500(t *testing.T) {
	router := setupTestRouterWithService(&fakeService{
		ListAuthorsFn: func(ctx context.Context) ([]model.Author, error) {
			return nil, errors.New("forced list error")
		},
	})

	w := doRequest(t, router, http.MethodGet, "/catalog/authors", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if resp.Code != "AUTHOR_LIST_FAILED" {
		t.Errorf("expected error code AUTHOR_LIST_FAILED, got %q", resp.Code)
	}
}

func TestGetAuthorByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	seedBook(t, db, author, "Dune")

	w := doRequest(t, router, http.MethodGet, "/catalog/authors/"+author.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp AuthorDetailResponse
	decode(t, w, &resp)

	if resp.Author.ID != author.ID.String() {
		t.Errorf("expected id %s, got %s", author.ID, resp.Author.ID)
	}
	if len(resp.Books) != 1 || resp.Books[0].Title != "Dune" {
		t.Errorf("expected author_books [Dune], got %+v", resp.Books)
	}
}

func TestGetAuthorByID_InvalidID(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodGet, "/catalog/authors/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "id" || resp.Errors[0].Rule != "uuid" {
		t.Errorf("unexpected errors: %+v", resp.Errors)
	}
}

func TestGetAuthorByID_NotFound(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodGet, "/catalog/authors/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if resp.Code != "AUTHOR_NOT_FOUND" {
		t.Errorf("expected error code AUTHOR_NOT_FOUND, got %q", resp.Code)
	}
}

func TestUpdateAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")

	w := doRequest(t, router, http.MethodPut, "/catalog/authors/"+author.ID.String(), map[string]any{
		"id":          uuid.NewString(),
		"first_name":  "Brian",
		"family_name": "Herbert",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Author
	decode(t, w, &resp)

	if resp.ID != author.ID.String() {
		t.Errorf("expected id preserved as %s, got %s", author.ID, resp.ID)
	}
	if resp.FirstName != "Brian" {
		t.Errorf("expected first name Brian, got %q", resp.FirstName)
	}
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodPut, "/catalog/authors/"+uuid.NewString(), AuthorRequest{FirstName: "Frank", FamilyName: "Herbert"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteAuthor_BlockedByBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	book := seedBook(t, db, author, "Dune")

	w := doRequest(t, router, http.MethodDelete, "/catalog/authors/"+author.ID.String(), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Code    string        `json:"code"`
		Message string        `json:"message"`
		Author  Author        `json:"author"`
		Books   []BookSummary `json:"author_books"`
	}
	decode(t, w, &resp)

	if resp.Code != "AUTHOR_HAS_DEPENDENTS" {
		t.Errorf("expected code AUTHOR_HAS_DEPENDENTS, got %q", resp.Code)
	}
	if resp.Author.ID != author.ID.String() {
		t.Errorf("expected author %s in body, got %s", author.ID, resp.Author.ID)
	}
	if len(resp.Books) != 1 || resp.Books[0].ID != book.ID.String() {
		t.Errorf("expected blocking book %s, got %+v", book.ID, resp.Books)
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 1 {
		t.Errorf("expected author kept, got %d authors", count)
	}
}

func TestDeleteAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")

	w := doRequest(t, router, http.MethodDelete, "/catalog/authors/"+author.ID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodDelete, "/catalog/authors/"+author.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", w.Code)
	}
}

func TestDeleteAuthor_InternalError_Returns500(t *testing.T) {
	router := setupTestRouterWithService(&fakeService{
		DeleteAuthorFn: func(ctx context.Context, id uuid.UUID) error {
			return errors.New("forced delete error")
		},
	})

	w := doRequest(t, router, http.MethodDelete, "/catalog/authors/"+uuid.NewString(), nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	decode(t, w, &resp)
	if resp.Code != "AUTHOR_DELETE_FAILED" {
		t.Errorf("expected error code AUTHOR_DELETE_FAILED, got %q", resp.Code)
	}
}

func TestAuthorDeletePreview(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := seedAuthor(t, db, "Frank", "Herbert")
	seedBook(t, db, author, "Dune")

	w := doRequest(t, router, http.MethodGet, "/catalog/authors/"+author.ID.String()+"/delete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp AuthorDeleteResponse
	decode(t, w, &resp)
	if resp.Decision != "blocked" {
		t.Errorf("expected decision blocked, got %q", resp.Decision)
	}
	if len(resp.Books) != 1 {
		t.Errorf("expected 1 blocking book, got %d", len(resp.Books))
	}
}

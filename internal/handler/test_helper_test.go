package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"gorm.io/gorm"
)

func setupTestRouterWithService(svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	Routes(r.Group("/catalog"), svc)

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupTestRouterWithService(catalog.NewService(repository.NewStore(db)))
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
}

func seedAuthor(t *testing.T, db *gorm.DB, first, family string) model.Author {
	t.Helper()

	author := model.Author{FirstName: first, FamilyName: family}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", family, err)
	}
	return author
}

func seedGenre(t *testing.T, db *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

func seedBook(t *testing.T, db *gorm.DB, author model.Author, title string, genres ...model.Genre) model.Book {
	t.Helper()

	book := model.Book{Title: title, AuthorID: author.ID, Summary: "summary", ISBN: "isbn"}
	ids := make([]uuid.UUID, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	book.SetGenreIDs(ids)

	if err := repository.NewGormBookRepository(db).Create(context.Background(), &book); err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}

func seedBookInstance(t *testing.T, db *gorm.DB, book model.Book, status string) model.BookInstance {
	t.Helper()

	bi := model.BookInstance{BookID: book.ID, Imprint: "imprint", Status: status}
	if err := db.Create(&bi).Error; err != nil {
		t.Fatalf("failed to seed book instance: %v", err)
	}
	return bi
}

// fakeService embeds CatalogService so tests only stub what they call.
type fakeService struct {
	CatalogService

	ListAuthorsFn  func(ctx context.Context) ([]model.Author, error)
	CreateAuthorFn func(ctx context.Context, in catalog.AuthorInput) (*model.Author, error)
	DeleteAuthorFn func(ctx context.Context, id uuid.UUID) error
	CreateGenreFn  func(ctx context.Context, in catalog.GenreInput) (*model.Genre, error)
	ListBooksFn    func(ctx context.Context) ([]model.Book, error)
	BookFormFn     func(ctx context.Context) (*catalog.BookForm, error)
	GetBookInstFn  func(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	SummaryFn      func(ctx context.Context) (*catalog.Summary, error)
}

func (f *fakeService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return f.ListAuthorsFn(ctx)
}

func (f *fakeService) CreateAuthor(ctx context.Context, in catalog.AuthorInput) (*model.Author, error) {
	return f.CreateAuthorFn(ctx, in)
}

func (f *fakeService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return f.DeleteAuthorFn(ctx, id)
}

func (f *fakeService) CreateGenre(ctx context.Context, in catalog.GenreInput) (*model.Genre, error) {
	return f.CreateGenreFn(ctx, in)
}

func (f *fakeService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return f.ListBooksFn(ctx)
}

func (f *fakeService) BookForm(ctx context.Context) (*catalog.BookForm, error) {
	return f.BookFormFn(ctx)
}

func (f *fakeService) GetBookInstance(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	return f.GetBookInstFn(ctx, id)
}

func (f *fakeService) Summary(ctx context.Context) (*catalog.Summary, error) {
	return f.SummaryFn(ctx)
}

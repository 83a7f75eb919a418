package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type BookHandler struct {
	svc    BookService
	errors errorWriter[model.Book, model.BookInstance]
}

func NewBookHandler(svc BookService) *BookHandler {
	return &BookHandler{
		svc: svc,
		errors: errorWriter[model.Book, model.BookInstance]{
			name:      "book",
			key:       "book",
			depKey:    "book_instances",
			blocked:   "Delete Bookinstances first.",
			entity:    func(b model.Book) any { return toBook(b) },
			dependent: func(bi model.BookInstance) any { return toBookInstance(bi) },
		},
	}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/form", h.BookForm)
		books.GET("/:id", h.GetBookByID)
		books.GET("/:id/delete", h.BookDeletePreview)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Validate and store a new book; author and genres must exist
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest               true  "Book to create"
// @Success      201      {object}  CreateBookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.CreateBook(c.Request.Context(), req.input())
	if err != nil {
		h.errors.write(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookResponse{
		Message: "Book created successfully",
		Book:    toBook(*book),
	})
}

// ListBooks godoc
// @Summary      List books
// @Description  All books ordered by title, with author and genres
// @Tags         books
// @Produce      json
// @Success      200  {object}  BookListResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		h.errors.write(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, BookListResponse{Books: toBooks(books)})
}

// GetBookByID godoc
// @Summary      Get book by ID
// @Description  A book with its author, genres and copies
// @Tags         books
// @Produce      json
// @Param        id   path      string                    true  "Book ID (UUID)"
// @Success      200  {object}  BookDetailResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.svc.GetBook(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, BookDetailResponse{
		Book:      toBook(d.Book),
		Instances: toBookInstances(d.Instances),
	})
}

// UpdateBook godoc
// @Summary      Replace a book
// @Description  Validate and replace every field of an existing book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Book ID (UUID)"
// @Param        payload  body      BookRequest               true  "Book fields"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.UpdateBook(c.Request.Context(), id, req.input())
	if err != nil {
		h.errors.write(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, toBook(*book))
}

// BookDeletePreview godoc
// @Summary      Preview a book delete
// @Description  The book and the copies that would block deleting it
// @Tags         books
// @Produce      json
// @Param        id   path      string                    true  "Book ID (UUID)"
// @Success      200  {object}  BookDeleteResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books/{id}/delete [get]
func (h *BookHandler) BookDeletePreview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.BookDeletePreview(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, BookDeleteResponse{
		Book:      toBook(p.Entity),
		Instances: toBookInstances(p.Dependents),
		Decision:  p.Decision.String(),
	})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book that has no registered copies
// @Tags         books
// @Produce      json
// @Param        id   path      string                    true  "Book ID (UUID)"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID or book has copies"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteBook(c.Request.Context(), id); err != nil {
		h.errors.write(c, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BookForm godoc
// @Summary      Book form data
// @Description  Authors and genres a book can reference
// @Tags         books
// @Produce      json
// @Success      200  {object}  BookFormResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/books/form [get]
func (h *BookHandler) BookForm(c *gin.Context) {
	form, err := h.svc.BookForm(c.Request.Context())
	if err != nil {
		writeInternalError(c, "BOOK_FORM_FAILED", "failed to load book form", err)
		return
	}

	c.JSON(http.StatusOK, BookFormResponse{
		Authors: toAuthors(form.Authors),
		Genres:  toGenres(form.Genres),
	})
}

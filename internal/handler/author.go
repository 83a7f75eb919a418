package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type AuthorHandler struct {
	svc    AuthorService
	errors errorWriter[model.Author, model.Book]
}

func NewAuthorHandler(svc AuthorService) *AuthorHandler {
	return &AuthorHandler{
		svc: svc,
		errors: errorWriter[model.Author, model.Book]{
			name:      "author",
			key:       "author",
			depKey:    "author_books",
			blocked:   "Cannot delete author with existing books. Delete books first.",
			entity:    func(a model.Author) any { return toAuthor(a) },
			dependent: func(b model.Book) any { return toBookSummary(b) },
		},
	}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.GET("/:id/delete", h.AuthorDeletePreview)
		authors.PUT("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Validate and store a new author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      AuthorRequest             true  "Author to create"
// @Success      201      {object}  CreateAuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req AuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author, err := h.svc.CreateAuthor(c.Request.Context(), req.input())
	if err != nil {
		h.errors.write(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, CreateAuthorResponse{
		Message: "Author created successfully",
		Author:  toAuthor(*author),
	})
}

// ListAuthors godoc
// @Summary      List authors
// @Description  All authors ordered by family name
// @Tags         authors
// @Produce      json
// @Success      200  {object}  AuthorListResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.svc.ListAuthors(c.Request.Context())
	if err != nil {
		h.errors.write(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, AuthorListResponse{Authors: toAuthors(authors)})
}

// GetAuthorByID godoc
// @Summary      Get author by ID
// @Description  An author and the books they wrote
// @Tags         authors
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      200  {object}  AuthorDetailResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.svc.GetAuthor(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, AuthorDetailResponse{
		Author: toAuthor(d.Author),
		Books:  toBookSummaries(d.Books),
	})
}

// UpdateAuthor godoc
// @Summary      Replace an author
// @Description  Validate and replace every field of an existing author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Author ID (UUID)"
// @Param        payload  body      AuthorRequest             true  "Author fields"
// @Success      200      {object}  Author
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author, err := h.svc.UpdateAuthor(c.Request.Context(), id, req.input())
	if err != nil {
		h.errors.write(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, toAuthor(*author))
}

// AuthorDeletePreview godoc
// @Summary      Preview an author delete
// @Description  The author and the books that would block deleting it
// @Tags         authors
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      200  {object}  AuthorDeleteResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/authors/{id}/delete [get]
func (h *AuthorHandler) AuthorDeletePreview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.AuthorDeletePreview(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, AuthorDeleteResponse{
		Author:   toAuthor(p.Entity),
		Books:    toBookSummaries(p.Dependents),
		Decision: p.Decision.String(),
	})
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author that no book references
// @Tags         authors
// @Produce      json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID or author has books"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteAuthor(c.Request.Context(), id); err != nil {
		h.errors.write(c, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type GenreHandler struct {
	svc    GenreService
	errors errorWriter[model.Genre, model.Book]
}

func NewGenreHandler(svc GenreService) *GenreHandler {
	return &GenreHandler{
		svc: svc,
		errors: errorWriter[model.Genre, model.Book]{
			name:      "genre",
			key:       "genre",
			depKey:    "genre_books",
			blocked:   "Cannot delete genre with associated books",
			entity:    func(g model.Genre) any { return toGenre(g) },
			dependent: func(b model.Book) any { return toBookSummary(b) },
		},
	}
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	genres := r.Group("/genres")
	{
		genres.POST("", h.CreateGenre)
		genres.GET("", h.ListGenres)
		genres.GET("/:id", h.GetGenreByID)
		genres.GET("/:id/delete", h.GenreDeletePreview)
		genres.PUT("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}
}

// CreateGenre godoc
// @Summary      Create a genre
// @Description  Store a new genre; a name already in use returns the existing genre with 409
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        payload  body      GenreRequest              true  "Genre to create"
// @Success      201      {object}  CreateGenreResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      409      {object}  CreateGenreResponse       "Genre already exists"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req GenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	genre, err := h.svc.CreateGenre(c.Request.Context(), req.input())
	if err != nil {
		h.errors.write(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, CreateGenreResponse{
		Message: "Genre created successfully",
		Genre:   toGenre(*genre),
	})
}

// ListGenres godoc
// @Summary      List genres
// @Description  All genres ordered by name
// @Tags         genres
// @Produce      json
// @Success      200  {object}  GenreListResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.svc.ListGenres(c.Request.Context())
	if err != nil {
		h.errors.write(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, GenreListResponse{Genres: toGenres(genres)})
}

// GetGenreByID godoc
// @Summary      Get genre by ID
// @Description  A genre and the books filed under it
// @Tags         genres
// @Produce      json
// @Param        id   path      string                    true  "Genre ID (UUID)"
// @Success      200  {object}  GenreDetailResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.svc.GetGenre(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, GenreDetailResponse{
		Genre: toGenre(d.Genre),
		Books: toBookSummaries(d.Books),
	})
}

// UpdateGenre godoc
// @Summary      Replace a genre
// @Description  Rename an existing genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Genre ID (UUID)"
// @Param        payload  body      GenreRequest              true  "Genre fields"
// @Success      200      {object}  Genre
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Genre not found"
// @Failure      409      {object}  CreateGenreResponse       "Name used by another genre"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req GenreRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	genre, err := h.svc.UpdateGenre(c.Request.Context(), id, req.input())
	if err != nil {
		h.errors.write(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, toGenre(*genre))
}

// GenreDeletePreview godoc
// @Summary      Preview a genre delete
// @Description  The genre and the books that would block deleting it
// @Tags         genres
// @Produce      json
// @Param        id   path      string                    true  "Genre ID (UUID)"
// @Success      200  {object}  GenreDeleteResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/genres/{id}/delete [get]
func (h *GenreHandler) GenreDeletePreview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.GenreDeletePreview(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, GenreDeleteResponse{
		Genre:    toGenre(p.Entity),
		Books:    toBookSummaries(p.Dependents),
		Decision: p.Decision.String(),
	})
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Delete a genre no book is filed under
// @Tags         genres
// @Produce      json
// @Param        id   path      string                    true  "Genre ID (UUID)"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID or genre has books"
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteGenre(c.Request.Context(), id); err != nil {
		h.errors.write(c, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

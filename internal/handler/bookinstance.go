package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type BookInstanceHandler struct {
	svc    BookInstanceService
	errors errorWriter[model.BookInstance, struct{}]
}

func NewBookInstanceHandler(svc BookInstanceService) *BookInstanceHandler {
	return &BookInstanceHandler{
		svc: svc,
		errors: errorWriter[model.BookInstance, struct{}]{
			name:      "book instance",
			key:       "bookinstance",
			entity:    func(bi model.BookInstance) any { return toBookInstance(bi) },
			dependent: func(struct{}) any { return nil },
		},
	}
}

func (h *BookInstanceHandler) RegisterRoutes(r *gin.RouterGroup) {
	instances := r.Group("/bookinstances")
	{
		instances.POST("", h.CreateBookInstance)
		instances.GET("", h.ListBookInstances)
		instances.GET("/form", h.BookInstanceForm)
		instances.GET("/:id", h.GetBookInstanceByID)
		instances.GET("/:id/delete", h.BookInstanceDeletePreview)
		instances.PUT("/:id", h.UpdateBookInstance)
		instances.DELETE("/:id", h.DeleteBookInstance)
	}
}

// CreateBookInstance godoc
// @Summary      Register a copy
// @Description  Validate and store a new copy of an existing book
// @Tags         bookinstances
// @Accept       json
// @Produce      json
// @Param        payload  body      BookInstanceRequest         true  "Copy to register"
// @Success      201      {object}  CreateBookInstanceResponse
// @Failure      400      {object}  validation.ErrorResponse    "Validation error"
// @Failure      500      {object}  validation.ErrorResponse    "Internal server error"
// @Router       /catalog/bookinstances [post]
func (h *BookInstanceHandler) CreateBookInstance(c *gin.Context) {
	var req BookInstanceRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	bi, err := h.svc.CreateBookInstance(c.Request.Context(), req.input())
	if err != nil {
		h.errors.write(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookInstanceResponse{
		Message:      "BookInstance created successfully",
		BookInstance: toBookInstance(*bi),
	})
}

// ListBookInstances godoc
// @Summary      List copies
// @Description  All copies ordered by due date, copies without one first
// @Tags         bookinstances
// @Produce      json
// @Success      200  {object}  BookInstanceListResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/bookinstances [get]
func (h *BookInstanceHandler) ListBookInstances(c *gin.Context) {
	instances, err := h.svc.ListBookInstances(c.Request.Context())
	if err != nil {
		h.errors.write(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, BookInstanceListResponse{BookInstances: toBookInstances(instances)})
}

// GetBookInstanceByID godoc
// @Summary      Get copy by ID
// @Tags         bookinstances
// @Produce      json
// @Param        id   path      string                      true  "Copy ID (UUID)"
// @Success      200  {object}  BookInstanceDetailResponse
// @Failure      400  {object}  validation.ErrorResponse    "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse    "Copy not found"
// @Failure      500  {object}  validation.ErrorResponse    "Internal server error"
// @Router       /catalog/bookinstances/{id} [get]
func (h *BookInstanceHandler) GetBookInstanceByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bi, err := h.svc.GetBookInstance(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, BookInstanceDetailResponse{BookInstance: toBookInstance(*bi)})
}

// UpdateBookInstance godoc
// @Summary      Replace a copy
// @Tags         bookinstances
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Copy ID (UUID)"
// @Param        payload  body      BookInstanceRequest       true  "Copy fields"
// @Success      200      {object}  BookInstance
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Copy not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/bookinstances/{id} [put]
func (h *BookInstanceHandler) UpdateBookInstance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req BookInstanceRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	bi, err := h.svc.UpdateBookInstance(c.Request.Context(), id, req.input())
	if err != nil {
		h.errors.write(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, toBookInstance(*bi))
}

// BookInstanceDeletePreview godoc
// @Summary      Preview a copy delete
// @Tags         bookinstances
// @Produce      json
// @Param        id   path      string                      true  "Copy ID (UUID)"
// @Success      200  {object}  BookInstanceDeleteResponse
// @Failure      400  {object}  validation.ErrorResponse    "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse    "Copy not found"
// @Failure      500  {object}  validation.ErrorResponse    "Internal server error"
// @Router       /catalog/bookinstances/{id}/delete [get]
func (h *BookInstanceHandler) BookInstanceDeletePreview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.BookInstanceDeletePreview(c.Request.Context(), id)
	if err != nil {
		h.errors.write(c, "fetch", err)
		return
	}

	c.JSON(http.StatusOK, BookInstanceDeleteResponse{
		BookInstance: toBookInstance(p.Entity),
		Decision:     p.Decision.String(),
	})
}

// DeleteBookInstance godoc
// @Summary      Delete a copy
// @Tags         bookinstances
// @Produce      json
// @Param        id   path      string                    true  "Copy ID (UUID)"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Copy not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/bookinstances/{id} [delete]
func (h *BookInstanceHandler) DeleteBookInstance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteBookInstance(c.Request.Context(), id); err != nil {
		h.errors.write(c, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BookInstanceForm godoc
// @Summary      Copy form data
// @Description  Books a copy can be registered against, ordered by title
// @Tags         bookinstances
// @Produce      json
// @Success      200  {object}  BookInstanceFormResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog/bookinstances/form [get]
func (h *BookInstanceHandler) BookInstanceForm(c *gin.Context) {
	books, err := h.svc.BookInstanceForm(c.Request.Context())
	if err != nil {
		writeInternalError(c, "BOOK_INSTANCE_FORM_FAILED", "failed to load book instance form", err)
		return
	}

	c.JSON(http.StatusOK, BookInstanceFormResponse{Books: toBooks(books)})
}

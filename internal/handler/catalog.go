package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	BookCount                  int64 `json:"book_count"`
	BookInstanceCount          int64 `json:"book_instance_count"`
	BookInstanceAvailableCount int64 `json:"book_instance_available_count"`
	AuthorCount                int64 `json:"author_count"`
	GenreCount                 int64 `json:"genre_count"`
}

type CatalogHandler struct {
	svc SummaryService
}

func NewCatalogHandler(svc SummaryService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.Summary)
}

// Summary godoc
// @Summary      Catalog summary
// @Description  Record counts across the catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  SummaryResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /catalog [get]
func (h *CatalogHandler) Summary(c *gin.Context) {
	sum, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		writeInternalError(c, "CATALOG_SUMMARY_FAILED", "failed to count catalog records", err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		BookCount:                  sum.Books,
		BookInstanceCount:          sum.BookInstances,
		BookInstanceAvailableCount: sum.AvailableBookInstances,
		AuthorCount:                sum.Authors,
		GenreCount:                 sum.Genres,
	})
}

// Routes wires every catalog handler onto r, normally the /catalog group.
func Routes(r *gin.RouterGroup, svc CatalogService) {
	NewCatalogHandler(svc).RegisterRoutes(r)
	NewAuthorHandler(svc).RegisterRoutes(r)
	NewGenreHandler(svc).RegisterRoutes(r)
	NewBookHandler(svc).RegisterRoutes(r)
	NewBookInstanceHandler(svc).RegisterRoutes(r)
}

package handler

import (
	"context"
	"errors"
	"net/http"

	"hvrdb/internal/models"
	"hvrdb/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles text and category store lookups
type SearchHandler struct {
	service StoreSearchService
}

// Service interface for dependency injection
type StoreSearchService interface {
	Search(context.Context, string) ([]models.Location, error)
	ByCategory(context.Context, string) ([]models.Location, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc StoreSearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /stores requests
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	locations, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// ByCategory handles GET /stores/categories/:category requests
func (h *SearchHandler) ByCategory(c *gin.Context) {
	locations, err := h.service.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

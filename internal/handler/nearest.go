package handler

import (
	"context"
	"fmt"
	"net/http"

	"hvrdb/internal/models"

	"github.com/gin-gonic/gin"
)

// NearestHandler answers "which store is closest to this point" lookups
type NearestHandler struct {
	service NearestStoreService
}

// NearestStoreService resolves a point to the closest stored location.
type NearestStoreService interface {
	Nearest(context.Context, float64, float64) (*models.Location, error)
}

// NewNearestHandler creates a new nearest store handler
func NewNearestHandler(svc NearestStoreService) *NearestHandler {
	return &NearestHandler{service: svc}
}

// coordinateParam reads a query parameter with the same rules the pipeline applies to
// dataset coordinates: surrounding space is ignored and NaN or infinities are rejected.
func coordinateParam(c *gin.Context, name string) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, fmt.Errorf("query parameter '%s' is required", name)
	}
	v, ok := models.ParseCoordinate(raw)
	if !ok {
		return 0, fmt.Errorf("query parameter '%s' is not a decimal coordinate", name)
	}
	return v, nil
}

// Nearest handles GET /stores/nearest?lat=..&lon=.. requests
func (h *NearestHandler) Nearest(c *gin.Context) {
	lat, err := coordinateParam(c, "lat")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lon, err := coordinateParam(c, "lon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		respondError(c, err)
		return
	}
	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("no store near %s,%s", models.FormatCoordinate(lat), models.FormatCoordinate(lon)),
		})
		return
	}

	c.JSON(http.StatusOK, location)
}

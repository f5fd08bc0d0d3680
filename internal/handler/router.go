package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter registers the store lookup routes.
func NewRouter(search *SearchHandler, nearest *NearestHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/stores", search.Search)
	r.GET("/stores/nearest", nearest.Nearest)
	r.GET("/stores/categories/:category", search.ByCategory)

	return r
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lessonhub/lessonhub/internal/lesson/service"
	"github.com/lessonhub/lessonhub/pkg/metrics"
)

// search resolves GET /search?q= through the two-stage lookup. An absent or
// empty query is rejected before the store is touched.
func (a *API) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusNotAcceptable, gin.H{"error": "query is required"})
		return
	}
	hits, stage, err := a.lessons.Search(c.Request.Context(), q)
	if err != nil {
		respondServerError(c, "search lessons", err)
		return
	}
	metrics.SearchResults.WithLabelValues(stage.String()).Inc()
	if stage == service.StageNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "no lessons found"})
		return
	}
	c.JSON(http.StatusOK, hits)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lessonhub/lessonhub/pkg/logger"
)

// respondServerError is the single terminal responder for unexpected store
// failures: the underlying error is logged server-side, the caller only ever
// sees the generic message.
func respondServerError(c *gin.Context, op string, err error) {
	logger.Errorf("%s: %v", op, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
}

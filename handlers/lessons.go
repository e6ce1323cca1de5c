package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lessonhub/lessonhub/internal/lesson/service"
)

func (a *API) listLessons(c *gin.Context) {
	list, err := a.lessons.List(c.Request.Context())
	if err != nil {
		respondServerError(c, "list lessons", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// updateLesson applies a partial merge update. The 408 responses are a
// preserved compatibility quirk of the public contract: invalid id, empty
// body and unmatched id all answer with StatusRequestTimeout.
func (a *API) updateLesson(c *gin.Context) {
	id := c.Param("id")
	if !service.ValidID(id) {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "invalid id"})
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "no data provided"})
		return
	}
	matched, err := a.lessons.Update(c.Request.Context(), id, fields)
	if err != nil {
		respondServerError(c, "update lesson", err)
		return
	}
	if matched == 0 {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "lesson not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lesson updated"})
}

func (a *API) deleteLesson(c *gin.Context) {
	id := c.Param("id")
	deleted, err := a.lessons.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrInvalidID) {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "invalid id"})
		return
	}
	if err != nil {
		respondServerError(c, "delete lesson", err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "lesson not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}

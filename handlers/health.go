package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// RegisterHealth wires the liveness and readiness probes. deps reports the
// current availability of each critical dependency; a nil func marks the
// service ready unconditionally.
func RegisterHealth(r gin.IRouter, deps func() map[string]bool) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "lessonhub api is running",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		status := map[string]bool{}
		if deps != nil {
			status = deps()
		}
		ready := true
		for _, ok := range status {
			if !ok {
				ready = false
			}
		}
		body := gin.H{"status": "ready", "deps": status, "uptime": fmt.Sprintf("%s", time.Since(startTime))}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	})
}

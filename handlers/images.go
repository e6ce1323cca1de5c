package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lessonhub/lessonhub/internal/storage"
	"github.com/lessonhub/lessonhub/pkg/logger"
)

// RegisterImageRoutes serves lesson images. When a MinIO store is configured
// it is consulted first; otherwise images come from the local directory.
// Missing files answer 404 rather than an error.
func RegisterImageRoutes(r gin.IRouter, dir string, store *storage.ImageStore) {
	r.GET("/images/*filepath", func(c *gin.Context) {
		name := strings.TrimPrefix(c.Param("filepath"), "/")
		if name == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		if store != nil {
			rc, size, contentType, err := store.Fetch(c.Request.Context(), name)
			if err == nil {
				defer rc.Close()
				if contentType == "" {
					contentType = "application/octet-stream"
				}
				c.DataFromReader(http.StatusOK, size, contentType, rc, nil)
				return
			}
			logger.Debugf("image %s not in bucket, trying local dir: %v", name, err)
		}

		path := filepath.Join(dir, filepath.Clean("/"+name))
		// keep the wildcard from escaping the image root
		root := filepath.Clean(dir)
		if path != root && !strings.HasPrefix(path, root+string(filepath.Separator)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		c.File(path)
	})
}

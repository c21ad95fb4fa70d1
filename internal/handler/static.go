package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"barclube/internal/apierror"

	"github.com/gin-gonic/gin"
)

// Static serves the frontend from rootDir for every route the API does not
// claim. "/" redirects to the index page; traversal attempts are rejected
// before the filesystem is touched.
func Static(rootDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Unknown API routes stay JSON.
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, apierror.ErrNotFound)
			return
		}

		if path == "/" || path == "" {
			c.Redirect(http.StatusFound, "/index.html")
			return
		}

		if strings.Contains(path, "..") {
			c.String(http.StatusBadRequest, "Invalid path")
			return
		}

		file := filepath.Join(rootDir, filepath.FromSlash(path))
		info, err := os.Stat(file)
		if err != nil || info.IsDir() {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		c.File(file)
	}
}

package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticPages serves the pre-built site from a directory: exact file
// matches first, /admin and /contact map to their pages, and every
// other path falls back to index.html so client-side routing works.
// API paths never reach this handler; it is mounted as NoRoute.
func StaticPages(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Not found"})
			return
		}
		reqPath := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
		switch reqPath {
		case "admin":
			reqPath = "admin.html"
		case "contact":
			reqPath = "contact.html"
		}
		full := filepath.Join(dir, reqPath)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}

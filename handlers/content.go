package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apaudel/folio/internal/content/service"
)

// ContentHandler serves the public read side of the portfolio.
type ContentHandler struct {
	content *service.Service
}

func NewContentHandler(content *service.Service) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/content", h.GetContent)
}

// GetContent returns the content document with defaults applied. No
// auth: this is what the public pages render from.
func (h *ContentHandler) GetContent(c *gin.Context) {
	doc, err := h.content.GetContent(c.Request.Context())
	if err != nil {
		failStore(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": doc})
}

package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/apaudel/folio/internal/sessions"
	"github.com/apaudel/folio/pkg/logger"
	"github.com/apaudel/folio/pkg/metrics"
	"github.com/apaudel/folio/pkg/middleware"
)

// ImageStore is the slice of the storage backend the upload route
// needs.
type ImageStore interface {
	UploadImage(ctx context.Context, kind, filename string, reader io.Reader, size int64, contentType string) (objectPath, publicURL string, err error)
}

var kindRe = regexp.MustCompile(`[^a-z0-9-]+`)

// UploadHandler receives admin image uploads and hands them to the
// storage backend. The returned URL is pasted into a form field by the
// editor; it only reaches the content document on the next save.
type UploadHandler struct {
	store    ImageStore
	sessions *sessions.Service
	maxBytes int64
}

func NewUploadHandler(store ImageStore, s *sessions.Service, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, sessions: s, maxBytes: maxBytes}
}

func (h *UploadHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/admin/upload-image", middleware.RequireAdmin(h.sessions), h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		fail(c, http.StatusBadRequest, "Image file is required.")
		return
	}
	if fileHeader.Size > h.maxBytes {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		fail(c, http.StatusBadRequest, "Image exceeds the upload size limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.ImageUploads.WithLabelValues("error").Inc()
		fail(c, http.StatusInternalServerError, "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	contentType, err := sniffImageType(file, fileHeader)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		fail(c, http.StatusBadRequest, "Only image uploads are allowed.")
		return
	}

	kind := kindRe.ReplaceAllString(strings.ToLower(c.PostForm("type")), "")
	if kind == "" {
		kind = "general"
	}

	objectPath, publicURL, err := h.store.UploadImage(c.Request.Context(), kind, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		logger.Errorf("image upload failed: %v", err)
		metrics.ImageUploads.WithLabelValues("error").Inc()
		fail(c, http.StatusInternalServerError, "Failed to store uploaded image.")
		return
	}
	metrics.ImageUploads.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "url": publicURL, "path": objectPath})
}

// sniffImageType determines the content type from the first bytes of
// the file rather than trusting the client-declared header, then
// rewinds the reader for the actual upload.
func sniffImageType(file multipart.File, header *multipart.FileHeader) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(buf[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", errNotImage
	}
	return contentType, nil
}

var errNotImage = errors.New("not an image")

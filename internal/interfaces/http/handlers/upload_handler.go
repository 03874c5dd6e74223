package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/infrastructure/storage"
	"agency-cms.backend/internal/interfaces/http/response"
)

const (
	maxUploadSize  = 5 << 20  // 5 MB
	maxGallerySize = 10 << 20 // 10 MB
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler stores entity images in the media bucket.
type UploadHandler struct {
	store storage.Uploader
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store storage.Uploader) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts a multipart image and returns its public URL.
// The gallery slot allows larger files for project photo sets.
// POST /api/v1/admin/:entity/upload?slot=gallery
func (h *UploadHandler) Upload(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}

	prefix := e.UploadPrefix
	limit := int64(maxUploadSize)
	if c.Query("slot") == "gallery" {
		prefix = e.GalleryPrefix
		limit = maxGallerySize
	}
	if prefix == "" {
		response.Error(c, domainerrors.BadRequest(e.Name+" does not accept uploads"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}
	if header.Size > limit {
		response.Error(c, domainerrors.BadRequest("file too large"))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	// Sniff the real content type; the client-declared header is not trusted.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		response.Error(c, err)
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !allowedImageTypes[contentType] {
		response.Error(c, domainerrors.BadRequest("unsupported file type"))
		return
	}

	reader := io.MultiReader(bytes.NewReader(head), file)
	url, err := h.store.Upload(c.Request.Context(), prefix, header.Filename, contentType, header.Size, reader)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}

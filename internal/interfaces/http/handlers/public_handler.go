package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/schema"
	"agency-cms.backend/internal/interfaces/http/response"
	"agency-cms.backend/internal/usecases"
)

// PublicHandler serves the marketing site's read endpoints and the two
// public write endpoints (newsletter signup and the contact form).
type PublicHandler struct {
	content *usecases.ContentUsecase
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(content *usecases.ContentUsecase) *PublicHandler {
	return &PublicHandler{content: content}
}

func resolvePublicEntity(c *gin.Context) (schema.Entity, bool) {
	e, ok := schema.Lookup(c.Param("entity"))
	if !ok || !e.PublicRead {
		response.Error(c, domainerrors.NotFound("Unknown content type"))
		return schema.Entity{}, false
	}
	return e, true
}

// List returns the visible rows of a public entity.
// GET /api/v1/content/:entity
func (h *PublicHandler) List(c *gin.Context) {
	e, ok := resolvePublicEntity(c)
	if !ok {
		return
	}

	items, err := h.content.PublicList(c.Request.Context(), e)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetBySlug returns one visible row by slug.
// GET /api/v1/content/:entity/:slug
func (h *PublicHandler) GetBySlug(c *gin.Context) {
	e, ok := resolvePublicEntity(c)
	if !ok {
		return
	}
	if e.Slug == nil {
		response.Error(c, domainerrors.NotFound("Unknown content type"))
		return
	}

	item, err := h.content.PublicGetBySlug(c.Request.Context(), e, c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// Subscribe adds a newsletter subscriber.
// POST /api/v1/newsletter/subscribe
func (h *PublicHandler) Subscribe(c *gin.Context) {
	e, ok := schema.Lookup("newsletter-subscribers")
	if !ok {
		response.Error(c, domainerrors.InternalError(nil))
		return
	}

	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.content.Create(c.Request.Context(), e, map[string]any{"email": input.Email}, uuid.Nil); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Subscribed"})
}

// Contact records a contact form submission.
// POST /api/v1/contact
func (h *PublicHandler) Contact(c *gin.Context) {
	e, ok := schema.Lookup("contact-submissions")
	if !ok {
		response.Error(c, domainerrors.InternalError(nil))
		return
	}

	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	raw := map[string]any{
		"name":    input.Name,
		"email":   input.Email,
		"subject": input.Subject,
		"message": input.Message,
	}
	if _, err := h.content.Create(c.Request.Context(), e, raw, uuid.Nil); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Message received"})
}

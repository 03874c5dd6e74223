package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/schema"
	"agency-cms.backend/internal/interfaces/http/middleware"
	"agency-cms.backend/internal/interfaces/http/response"
	"agency-cms.backend/internal/usecases"
)

// ContentHandler serves the admin CRUD endpoints for every content entity.
// The :entity route segment selects the declaration; one handler set covers
// all tables.
type ContentHandler struct {
	content *usecases.ContentUsecase
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *usecases.ContentUsecase) *ContentHandler {
	return &ContentHandler{content: content}
}

func resolveEntity(c *gin.Context) (schema.Entity, bool) {
	e, ok := schema.Lookup(c.Param("entity"))
	if !ok {
		response.Error(c, domainerrors.NotFound("Unknown content type"))
		return schema.Entity{}, false
	}
	return e, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// actorID resolves the authenticated user for audit stamping. Public routes
// have no auth context and resolve to uuid.Nil.
func actorID(c *gin.Context) uuid.UUID {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil
	}
	return id
}

// List returns all rows of an entity for the dashboard.
// GET /api/v1/admin/:entity
func (h *ContentHandler) List(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}

	items, err := h.content.ListAdmin(c.Request.Context(), e, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns one row for the edit form.
// GET /api/v1/admin/:entity/:id
func (h *ContentHandler) Get(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.content.GetByID(c.Request.Context(), e, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// Create creates a new row.
// POST /api/v1/admin/:entity
func (h *ContentHandler) Create(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.content.Create(c.Request.Context(), e, raw, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

// Update overwrites an existing row.
// PUT /api/v1/admin/:entity/:id
func (h *ContentHandler) Update(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.content.Update(c.Request.Context(), e, id, raw, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// Toggle flips a lifecycle column without touching the rest of the row.
// PATCH /api/v1/admin/:entity/:id/toggle
func (h *ContentHandler) Toggle(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Field string `json:"field" binding:"required"`
		Value any    `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.content.Toggle(c.Request.Context(), e, id, input.Field, input.Value, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// Delete removes a row permanently.
// DELETE /api/v1/admin/:entity/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.content.Delete(c.Request.Context(), e, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Deleted"})
}

// SlugCheck probes slug availability for the live form field.
// GET /api/v1/admin/:entity/slug-check?slug=...&exclude_id=...
func (h *ContentHandler) SlugCheck(c *gin.Context) {
	e, ok := resolveEntity(c)
	if !ok {
		return
	}
	if e.Slug == nil {
		response.Error(c, domainerrors.BadRequest(e.Name+" has no slug"))
		return
	}

	var excludeID *uuid.UUID
	if raw := c.Query("exclude_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid exclude_id"))
			return
		}
		excludeID = &id
	}

	check := h.content.CheckSlug(c.Request.Context(), e, c.Query("slug"), excludeID)
	response.Success(c, http.StatusOK, check)
}

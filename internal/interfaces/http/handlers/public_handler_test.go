package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/usecases"
)

func newPublicRouter(repo *contentRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewContentUsecase(repo, nil)
	h := NewPublicHandler(uc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/content/:entity", h.List)
	api.GET("/content/:entity/:slug", h.GetBySlug)
	api.POST("/newsletter/subscribe", h.Subscribe)
	api.POST("/contact", h.Contact)
	return r
}

func seedService(repo *contentRepoStub, slug string, active bool) uuid.UUID {
	id := uuid.New()
	repo.rows[id] = map[string]any{
		"name":      "Web Design",
		"slug":      slug,
		"is_active": active,
	}
	return id
}

func TestPublicHandler_List(t *testing.T) {
	repo := newContentRepoStub()
	seedService(repo, "web-design", true)
	seedService(repo, "hidden", false)
	r := newPublicRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/v1/content/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "web-design")
	require.NotContains(t, w.Body.String(), "hidden")
}

func TestPublicHandler_List_UnknownEntity(t *testing.T) {
	r := newPublicRouter(newContentRepoStub())

	w := doJSON(r, http.MethodGet, "/api/v1/content/widgets", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_List_NonPublicEntity(t *testing.T) {
	r := newPublicRouter(newContentRepoStub())

	// Subscriber emails must never be listable from the public site.
	w := doJSON(r, http.MethodGet, "/api/v1/content/newsletter-subscribers", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/content/contact-submissions", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_GetBySlug(t *testing.T) {
	repo := newContentRepoStub()
	seedService(repo, "web-design", true)
	r := newPublicRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/v1/content/services/web-design", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"slug":"web-design"`)

	w = doJSON(r, http.MethodGet, "/api/v1/content/services/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_GetBySlug_HiddenRow(t *testing.T) {
	repo := newContentRepoStub()
	seedService(repo, "web-design", false)
	r := newPublicRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/v1/content/services/web-design", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_GetBySlug_SluglessEntity(t *testing.T) {
	r := newPublicRouter(newContentRepoStub())

	w := doJSON(r, http.MethodGet, "/api/v1/content/faqs/anything", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_Subscribe(t *testing.T) {
	repo := newContentRepoStub()
	r := newPublicRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]any{"email": "Reader@Example.COM"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.rows, 1)
	for _, row := range repo.rows {
		require.Equal(t, "reader@example.com", row["email"])
	}
}

func TestPublicHandler_Subscribe_InvalidEmail(t *testing.T) {
	r := newPublicRouter(newContentRepoStub())

	w := doJSON(r, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]any{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "must be a valid email address")
}

func TestPublicHandler_Subscribe_Duplicate(t *testing.T) {
	repo := newContentRepoStub()
	repo.createErr = domainerrors.ErrConflict
	r := newPublicRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]any{"email": "reader@example.com"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "Email already subscribed")
}

func TestPublicHandler_Contact(t *testing.T) {
	repo := newContentRepoStub()
	r := newPublicRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/v1/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.rows, 1)
	for _, row := range repo.rows {
		require.Equal(t, false, row["is_read"])
	}
}

func TestPublicHandler_Contact_MissingFields(t *testing.T) {
	r := newPublicRouter(newContentRepoStub())

	w := doJSON(r, http.MethodPost, "/api/v1/contact", map[string]any{"name": "Visitor"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agency-cms.backend/internal/interfaces/http/handlers"
	"agency-cms.backend/internal/interfaces/http/middleware"
	"agency-cms.backend/pkg/jwt"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:    &handlers.AuthHandler{},
		contentHandler: &handlers.ContentHandler{},
		publicHandler:  &handlers.PublicHandler{},
		uploadHandler:  &handlers.UploadHandler{},
		authMiddleware: func(c *gin.Context) { c.Next() },
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/refresh"},
		{"GET", "/api/v1/auth/me"},
		{"POST", "/api/v1/auth/change-password"},
		{"GET", "/api/v1/content/:entity"},
		{"GET", "/api/v1/content/:entity/:slug"},
		{"POST", "/api/v1/newsletter/subscribe"},
		{"POST", "/api/v1/contact"},
		{"GET", "/api/v1/admin/:entity"},
		{"GET", "/api/v1/admin/:entity/slug-check"},
		{"GET", "/api/v1/admin/:entity/:id"},
		{"POST", "/api/v1/admin/:entity"},
		{"POST", "/api/v1/admin/:entity/upload"},
		{"PUT", "/api/v1/admin/:entity/:id"},
		{"PATCH", "/api/v1/admin/:entity/:id/toggle"},
		{"DELETE", "/api/v1/admin/:entity/:id"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestAdminGroup_ViewerDenied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)

	r := gin.New()
	registerAPIV1Routes(r, routeDeps{
		authHandler:    &handlers.AuthHandler{},
		contentHandler: &handlers.ContentHandler{},
		publicHandler:  &handlers.PublicHandler{},
		uploadHandler:  &handlers.UploadHandler{},
		authMiddleware: middleware.AuthMiddleware(svc),
	})

	pair, err := svc.GenerateTokenPair(uuid.New(), "viewer@example.com", "viewer")
	if err != nil {
		t.Fatalf("token pair: %v", err)
	}

	// A valid viewer token must be rejected before any admin handler runs,
	// reads included.
	for _, path := range []string{
		"/api/v1/admin/faqs",
		"/api/v1/admin/services/slug-check?slug=x",
		"/api/v1/admin/contact-submissions",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+pair.AccessToken)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("GET %s with viewer token: expected 403, got %d", path, rec.Code)
		}
	}

	// No token at all stays a 401 from the auth middleware.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/faqs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    &handlers.AuthHandler{},
		contentHandler: &handlers.ContentHandler{},
		publicHandler:  &handlers.PublicHandler{},
		uploadHandler:  &handlers.UploadHandler{},
		authMiddleware: func(c *gin.Context) { c.Next() },
	})

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

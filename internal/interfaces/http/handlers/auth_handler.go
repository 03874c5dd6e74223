package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-cms.backend/internal/domain/entities"
	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/interfaces/http/middleware"
	"agency-cms.backend/internal/interfaces/http/response"
	"agency-cms.backend/internal/usecases"
	"agency-cms.backend/pkg/jwt"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login handles dashboard login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		switch err {
		case domainerrors.ErrInvalidCredentials:
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
		case domainerrors.ErrUserNotActive:
			response.Error(c, domainerrors.Forbidden("Account is deactivated"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  authResponse.AccessToken,
		"refreshToken": authResponse.RefreshToken,
		"user":         authResponse.User,
	})
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		switch err {
		case jwt.ErrExpiredToken:
			response.Error(c, domainerrors.Unauthorized("Refresh token has expired"))
		case jwt.ErrInvalidToken:
			response.Error(c, domainerrors.Unauthorized("Invalid refresh token"))
		case domainerrors.ErrUserNotActive:
			response.Error(c, domainerrors.Forbidden("Account is deactivated"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.Unauthorized("Invalid refresh token"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.Unauthorized("User no longer exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ChangePassword updates the authenticated user's password
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.BadRequest("Current password is incorrect"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

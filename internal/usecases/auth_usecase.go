package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agency-cms.backend/internal/domain/entities"
	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/repositories"
	"agency-cms.backend/pkg/crypto"
	"agency-cms.backend/pkg/jwt"
	"agency-cms.backend/pkg/logger"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a dashboard user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserNotActive
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	// Last-login is advisory; a failed stamp must not block the login.
	if err := u.userRepo.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		logger.Warn(ctx, "failed to stamp last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Re-read the user so a deactivated account cannot refresh its way in.
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserNotActive
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ChangePassword verifies the current password and stores a new hash
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return u.userRepo.UpdatePassword(ctx, userID, hash)
}

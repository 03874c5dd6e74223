package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"agency-cms.backend/internal/domain/entities"
	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/repositories"
	"agency-cms.backend/internal/infrastructure/models"
)

// userRepo implements repositories.UserRepository
type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *userRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]*entities.User, error) {
	var ms []models.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, nil
}

func (r *userRepo) toEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Role:         entities.Role(m.Role),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.LastLoginAt != nil {
		u.LastLoginAt = null.TimeFrom(*m.LastLoginAt)
	}
	return u
}

func (r *userRepo) toModel(e *entities.User) *models.User {
	m := &models.User{
		ID:           e.ID,
		Email:        strings.ToLower(strings.TrimSpace(e.Email)),
		Name:         e.Name,
		Role:         string(e.Role),
		PasswordHash: e.PasswordHash,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.LastLoginAt.Valid {
		t := e.LastLoginAt.Time
		m.LastLoginAt = &t
	}
	return m
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-cms.backend/internal/domain/entities"
)

// UserRepository defines dashboard-user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context) ([]*entities.User, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"agency-cms.backend/internal/domain/entities"
	"agency-cms.backend/internal/domain/schema"
)

// ContentRepository defines data operations shared by every content entity.
// The entity declaration selects the table; rows travel as column-keyed maps.
type ContentRepository interface {
	// ListAdmin returns all rows ordered by sort key, optionally filtered by
	// a search term over the entity's declared search fields.
	ListAdmin(ctx context.Context, e schema.Entity, search string) ([]entities.Record, error)
	// ListPublic returns only visible rows (is_active = true or
	// status = 'published') in sort_order ASC, created_at ASC order.
	ListPublic(ctx context.Context, e schema.Entity) ([]entities.Record, error)
	GetByID(ctx context.Context, e schema.Entity, id uuid.UUID) (entities.Record, error)
	// GetPublicBySlug returns a visible row by slug for the public site.
	GetPublicBySlug(ctx context.Context, e schema.Entity, slug string) (entities.Record, error)
	// SlugExists is the advisory point query backing the uniqueness
	// pre-check; excludeID skips the record's own row when editing.
	SlugExists(ctx context.Context, e schema.Entity, slug string, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, e schema.Entity, values map[string]any) error
	Update(ctx context.Context, e schema.Entity, id uuid.UUID, values map[string]any) error
	// SetFields updates only the given columns (toggles plus audit fields).
	SetFields(ctx context.Context, e schema.Entity, id uuid.UUID, values map[string]any) error
	// Delete removes the row permanently. Admin-gated at the route level.
	Delete(ctx context.Context, e schema.Entity, id uuid.UUID) error
	// DueScheduled returns draft rows whose scheduled_for has passed.
	DueScheduled(ctx context.Context, e schema.Entity, now time.Time, limit int) ([]entities.Record, error)
	// MarkPublished publishes a row, stamping published_at only if it was
	// never set before. by records who performed the publish (nil for the
	// scheduler).
	MarkPublished(ctx context.Context, e schema.Entity, id uuid.UUID, now time.Time, by any) error
}

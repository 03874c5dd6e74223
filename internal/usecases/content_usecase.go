package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"agency-cms.backend/internal/domain/entities"
	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/repositories"
	"agency-cms.backend/internal/domain/schema"
	"agency-cms.backend/pkg/logger"
	"agency-cms.backend/pkg/redis"
	"agency-cms.backend/pkg/slug"
	"agency-cms.backend/pkg/utils"
)

type publicCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
	InvalidateEntity(ctx context.Context, entity string) error
}

// ContentUsecase implements the shared create/edit/toggle/delete flows for
// every content entity. The entity declaration passed into each call selects
// the table, fields and lifecycle; the flow itself never varies per entity.
type ContentUsecase struct {
	repo  repositories.ContentRepository
	cache publicCache
}

// NewContentUsecase creates a new content usecase
func NewContentUsecase(repo repositories.ContentRepository, cache publicCache) *ContentUsecase {
	return &ContentUsecase{repo: repo, cache: cache}
}

// ListAdmin returns all rows for the dashboard, optionally filtered.
func (u *ContentUsecase) ListAdmin(ctx context.Context, e schema.Entity, search string) ([]entities.Record, error) {
	return u.repo.ListAdmin(ctx, e, search)
}

// GetByID returns one row for the dashboard edit form.
func (u *ContentUsecase) GetByID(ctx context.Context, e schema.Entity, id uuid.UUID) (entities.Record, error) {
	rec, err := u.repo.GetByID(ctx, e, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(e.Name + " not found")
		}
		return nil, err
	}
	return rec, nil
}

// Create validates and persists a new record. Slug entities derive their
// slug from the source field when the form left it blank. actor is the
// authenticated user; uuid.Nil for public submissions.
func (u *ContentUsecase) Create(ctx context.Context, e schema.Entity, raw map[string]any, actor uuid.UUID) (entities.Record, error) {
	values, ferrs := schema.Normalize(e, raw)
	if len(ferrs) > 0 {
		return nil, domainerrors.Validation(toFieldErrors(ferrs))
	}

	if e.Slug != nil {
		chosen, appErr := u.resolveSlug(ctx, e, raw, values, nil)
		if appErr != nil {
			return nil, appErr
		}
		values["slug"] = chosen
	}

	now := time.Now().UTC()
	id := utils.GenerateUUIDv7()
	values["id"] = id
	values["created_at"] = now
	values["updated_at"] = now
	values["created_by"] = actorValue(actor)
	values["updated_by"] = actorValue(actor)

	if e.Lifecycle == schema.LifecycleStatus {
		if values["status"] == schema.StatusPublished {
			values["published_at"] = null.TimeFrom(now)
		} else {
			values["published_at"] = null.Time{}
		}
	}

	if err := u.repo.Create(ctx, e, values); err != nil {
		return nil, u.translateConflict(e, err)
	}

	u.invalidate(ctx, e)
	return u.repo.GetByID(ctx, e, id)
}

// Update validates and persists changes to an existing record. The slug is
// never regenerated from the source field; it only changes when the form
// submits a new one.
func (u *ContentUsecase) Update(ctx context.Context, e schema.Entity, id uuid.UUID, raw map[string]any, actor uuid.UUID) (entities.Record, error) {
	current, err := u.repo.GetByID(ctx, e, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(e.Name + " not found")
		}
		return nil, err
	}

	values, ferrs := schema.Normalize(e, raw)
	if len(ferrs) > 0 {
		return nil, domainerrors.Validation(toFieldErrors(ferrs))
	}

	if e.Slug != nil {
		currentSlug, _ := current.String("slug")
		provided, _ := stringInput(raw["slug"])
		if strings.TrimSpace(provided) == "" {
			values["slug"] = currentSlug
		} else {
			chosen, appErr := u.resolveSlug(ctx, e, raw, values, &id)
			if appErr != nil {
				return nil, appErr
			}
			values["slug"] = chosen
		}
	}

	now := time.Now().UTC()
	values["updated_at"] = now
	values["updated_by"] = actorValue(actor)

	// published_at is stamped by MarkPublished, never overwritten here.
	publish := e.Lifecycle == schema.LifecycleStatus && values["status"] == schema.StatusPublished
	delete(values, "published_at")

	if err := u.repo.Update(ctx, e, id, values); err != nil {
		return nil, u.translateConflict(e, err)
	}
	if publish {
		if err := u.repo.MarkPublished(ctx, e, id, now, actorValue(actor)); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
	}

	u.invalidate(ctx, e)
	return u.repo.GetByID(ctx, e, id)
}

// Toggle flips one of the entity's boolean lifecycle columns, or moves a
// status entity between draft and published. Only the named column and the
// audit fields change.
func (u *ContentUsecase) Toggle(ctx context.Context, e schema.Entity, id uuid.UUID, field string, value any, actor uuid.UUID) (entities.Record, error) {
	now := time.Now().UTC()

	switch {
	case field == "status" && e.Lifecycle == schema.LifecycleStatus:
		s, ok := value.(string)
		if !ok || (s != schema.StatusDraft && s != schema.StatusPublished) {
			return nil, domainerrors.BadRequest("status must be draft or published")
		}
		if s == schema.StatusPublished {
			if err := u.repo.MarkPublished(ctx, e, id, now, actorValue(actor)); err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return nil, domainerrors.NotFound(e.Name + " not found")
				}
				return nil, err
			}
		} else {
			if err := u.repo.SetFields(ctx, e, id, map[string]any{"status": schema.StatusDraft, "updated_at": now, "updated_by": actorValue(actor)}); err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return nil, domainerrors.NotFound(e.Name + " not found")
				}
				return nil, err
			}
		}
	case e.HasToggleField(field):
		b, ok := value.(bool)
		if !ok {
			return nil, domainerrors.BadRequest(field + " must be a boolean")
		}
		if err := u.repo.SetFields(ctx, e, id, map[string]any{field: b, "updated_at": now, "updated_by": actorValue(actor)}); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound(e.Name + " not found")
			}
			return nil, err
		}
	default:
		return nil, domainerrors.BadRequest("cannot toggle " + field)
	}

	u.invalidate(ctx, e)
	return u.repo.GetByID(ctx, e, id)
}

// Delete removes a record permanently.
func (u *ContentUsecase) Delete(ctx context.Context, e schema.Entity, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, e, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(e.Name + " not found")
		}
		return err
	}
	u.invalidate(ctx, e)
	return nil
}

// PublicList returns the visible rows of a public entity, cached.
func (u *ContentUsecase) PublicList(ctx context.Context, e schema.Entity) ([]entities.Record, error) {
	key := redis.ListKey(e.Name)
	if u.cache != nil {
		var cached []entities.Record
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Warn(ctx, "cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	records, err := u.repo.ListPublic(ctx, e)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, records); err != nil {
			logger.Warn(ctx, "cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return records, nil
}

// PublicGetBySlug returns one visible row by slug, cached.
func (u *ContentUsecase) PublicGetBySlug(ctx context.Context, e schema.Entity, s string) (entities.Record, error) {
	key := redis.DetailKey(e.Name, s)
	if u.cache != nil {
		var cached entities.Record
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Warn(ctx, "cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	rec, err := u.repo.GetPublicBySlug(ctx, e, s)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(e.Name + " not found")
		}
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, rec); err != nil {
			logger.Warn(ctx, "cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return rec, nil
}

// CheckSlug is the advisory availability probe behind the form's live slug
// field. A store error fails open with Checked=false; the unique constraint
// still guards the actual save.
func (u *ContentUsecase) CheckSlug(ctx context.Context, e schema.Entity, input string, excludeID *uuid.UUID) entities.SlugCheck {
	maxLen := slug.MaxLength
	if e.Slug != nil && e.Slug.MaxLen > 0 {
		maxLen = e.Slug.MaxLen
	}

	normalized := slug.Make(input, maxLen)
	if normalized == "" {
		return entities.SlugCheck{Slug: normalized, Available: false, Checked: true, Message: "Slug must contain letters or numbers"}
	}

	exists, err := u.repo.SlugExists(ctx, e, normalized, excludeID)
	if err != nil {
		logger.Warn(ctx, "slug check failed open", zap.String("entity", e.Name), zap.String("slug", normalized), zap.Error(err))
		return entities.SlugCheck{Slug: normalized, Available: true, Checked: false}
	}
	if exists {
		return entities.SlugCheck{Slug: normalized, Available: false, Checked: true, Message: e.UniqueMessage()}
	}
	return entities.SlugCheck{Slug: normalized, Available: true, Checked: true}
}

// resolveSlug picks the record's slug from the submitted value or derives it
// from the source field, then runs the advisory availability pre-check.
func (u *ContentUsecase) resolveSlug(ctx context.Context, e schema.Entity, raw, values map[string]any, excludeID *uuid.UUID) (string, *domainerrors.AppError) {
	maxLen := slug.MaxLength
	if e.Slug.MaxLen > 0 {
		maxLen = e.Slug.MaxLen
	}

	input, _ := stringInput(raw["slug"])
	if strings.TrimSpace(input) == "" {
		source, _ := values[e.Slug.Source].(string)
		input = source
	}

	chosen := slug.Make(input, maxLen)
	if chosen == "" {
		return "", domainerrors.Validation([]domainerrors.FieldError{{Field: "slug", Message: "could not derive a slug"}})
	}

	exists, err := u.repo.SlugExists(ctx, e, chosen, excludeID)
	if err != nil {
		// Advisory only; the unique constraint catches the race at save time.
		logger.Warn(ctx, "slug pre-check failed open", zap.String("entity", e.Name), zap.String("slug", chosen), zap.Error(err))
		return chosen, nil
	}
	if exists {
		return "", domainerrors.SlugTaken(e.UniqueMessage())
	}
	return chosen, nil
}

func (u *ContentUsecase) translateConflict(e schema.Entity, err error) error {
	if errors.Is(err, domainerrors.ErrConflict) {
		if e.Slug != nil {
			return domainerrors.SlugTaken(e.UniqueMessage())
		}
		return domainerrors.Conflict(e.UniqueMessage())
	}
	return err
}

func (u *ContentUsecase) invalidate(ctx context.Context, e schema.Entity) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateEntity(ctx, e.Name); err != nil {
		logger.Warn(ctx, "cache invalidation failed", zap.String("entity", e.Name), zap.Error(err))
	}
}

// actorValue maps the zero uuid (public submissions, the scheduler) to a
// null audit column.
func actorValue(actor uuid.UUID) any {
	if actor == uuid.Nil {
		return nil
	}
	return actor
}

func toFieldErrors(ferrs []schema.FieldError) []domainerrors.FieldError {
	out := make([]domainerrors.FieldError, len(ferrs))
	for i, fe := range ferrs {
		out[i] = domainerrors.FieldError{Field: fe.Field, Message: fe.Message}
	}
	return out
}

func stringInput(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	}
	return "", false
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"agency-cms.backend/internal/domain/entities"
	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/repositories"
	"agency-cms.backend/internal/domain/schema"
)

// contentRepo implements repositories.ContentRepository for every declared
// content entity over its table. Rows are read and written as column-keyed
// maps so one implementation serves all entities.
type contentRepo struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) repositories.ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) ListAdmin(ctx context.Context, e schema.Entity, search string) ([]entities.Record, error) {
	q := r.db.WithContext(ctx).Table(e.Table)

	search = strings.TrimSpace(search)
	if search != "" && len(e.SearchFields) > 0 {
		conds := make([]string, 0, len(e.SearchFields))
		args := make([]any, 0, len(e.SearchFields))
		term := "%" + strings.ToLower(search) + "%"
		for _, col := range e.SearchFields {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, term)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	var rows []map[string]any
	if err := q.Order(adminOrder(e)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *contentRepo) ListPublic(ctx context.Context, e schema.Entity) ([]entities.Record, error) {
	q := r.db.WithContext(ctx).Table(e.Table)
	q = publicScope(q, e)

	var rows []map[string]any
	if err := q.Order(publicOrder(e)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *contentRepo) GetByID(ctx context.Context, e schema.Entity, id uuid.UUID) (entities.Record, error) {
	row := map[string]any{}
	if err := r.db.WithContext(ctx).Table(e.Table).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return entities.Record(row), nil
}

func (r *contentRepo) GetPublicBySlug(ctx context.Context, e schema.Entity, slug string) (entities.Record, error) {
	q := r.db.WithContext(ctx).Table(e.Table).Where("slug = ?", slug)
	q = publicScope(q, e)

	row := map[string]any{}
	if err := q.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return entities.Record(row), nil
}

func (r *contentRepo) SlugExists(ctx context.Context, e schema.Entity, slug string, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Table(e.Table).Where("slug = ?", slug)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *contentRepo) Create(ctx context.Context, e schema.Entity, values map[string]any) error {
	if err := r.db.WithContext(ctx).Table(e.Table).Create(&values).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *contentRepo) Update(ctx context.Context, e schema.Entity, id uuid.UUID, values map[string]any) error {
	result := r.db.WithContext(ctx).Table(e.Table).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translateConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *contentRepo) SetFields(ctx context.Context, e schema.Entity, id uuid.UUID, values map[string]any) error {
	return r.Update(ctx, e, id, values)
}

func (r *contentRepo) Delete(ctx context.Context, e schema.Entity, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec("DELETE FROM "+e.Table+" WHERE id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *contentRepo) DueScheduled(ctx context.Context, e schema.Entity, now time.Time, limit int) ([]entities.Record, error) {
	if e.Lifecycle != schema.LifecycleStatus {
		return nil, nil
	}
	var rows []map[string]any
	err := r.db.WithContext(ctx).Table(e.Table).
		Where("status = ?", schema.StatusDraft).
		Where("scheduled_for IS NOT NULL AND scheduled_for <= ?", now).
		Order("scheduled_for ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (r *contentRepo) MarkPublished(ctx context.Context, e schema.Entity, id uuid.UUID, now time.Time, by any) error {
	// COALESCE keeps the first published_at forever; re-publishing never
	// overwrites it.
	result := r.db.WithContext(ctx).Exec(
		"UPDATE "+e.Table+" SET status = ?, published_at = COALESCE(published_at, ?), updated_at = ?, updated_by = ? WHERE id = ?",
		schema.StatusPublished, now, now, by, id,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func publicScope(q *gorm.DB, e schema.Entity) *gorm.DB {
	switch e.Lifecycle {
	case schema.LifecycleActive:
		return q.Where("is_active = ?", true)
	case schema.LifecycleStatus:
		return q.Where("status = ?", schema.StatusPublished)
	}
	return q
}

func adminOrder(e schema.Entity) string {
	if e.HasSortOrder {
		return "sort_order ASC, created_at ASC"
	}
	return "created_at DESC"
}

func publicOrder(e schema.Entity) string {
	if e.HasSortOrder {
		return "sort_order ASC, created_at ASC"
	}
	return "created_at DESC"
}

func toRecords(rows []map[string]any) []entities.Record {
	items := make([]entities.Record, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Record(row))
	}
	return items
}

// translateConstraint maps a unique-constraint violation from the store to
// the domain conflict error so handlers can re-surface it with the same
// message the advisory pre-check uses.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return domainerrors.ErrConflict
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

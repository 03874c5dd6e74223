package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-cms.backend/internal/domain/entities"
	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/internal/domain/schema"
)

// contentRepoStub is an in-memory ContentRepository for handler tests.
type contentRepoStub struct {
	rows map[uuid.UUID]map[string]any

	slugExists    bool
	slugExistsErr error
	listErr       error
	createErr     error
}

func newContentRepoStub() *contentRepoStub {
	return &contentRepoStub{rows: map[uuid.UUID]map[string]any{}}
}

func (s *contentRepoStub) record(id uuid.UUID) entities.Record {
	rec := entities.Record{"id": id.String()}
	for k, v := range s.rows[id] {
		rec[k] = v
	}
	return rec
}

func (s *contentRepoStub) ListAdmin(_ context.Context, _ schema.Entity, _ string) ([]entities.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := []entities.Record{}
	for id := range s.rows {
		out = append(out, s.record(id))
	}
	return out, nil
}

func (s *contentRepoStub) ListPublic(_ context.Context, _ schema.Entity) ([]entities.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := []entities.Record{}
	for id, row := range s.rows {
		if row["is_active"] == true || row["status"] == schema.StatusPublished {
			out = append(out, s.record(id))
		}
	}
	return out, nil
}

func (s *contentRepoStub) GetByID(_ context.Context, _ schema.Entity, id uuid.UUID) (entities.Record, error) {
	if _, ok := s.rows[id]; !ok {
		return nil, domainerrors.ErrNotFound
	}
	return s.record(id), nil
}

func (s *contentRepoStub) GetPublicBySlug(_ context.Context, _ schema.Entity, slug string) (entities.Record, error) {
	for id, row := range s.rows {
		if row["slug"] == slug && (row["is_active"] == true || row["status"] == schema.StatusPublished) {
			return s.record(id), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *contentRepoStub) SlugExists(_ context.Context, _ schema.Entity, _ string, _ *uuid.UUID) (bool, error) {
	if s.slugExistsErr != nil {
		return false, s.slugExistsErr
	}
	return s.slugExists, nil
}

func (s *contentRepoStub) Create(_ context.Context, _ schema.Entity, values map[string]any) error {
	if s.createErr != nil {
		return s.createErr
	}
	id := values["id"].(uuid.UUID)
	row := map[string]any{}
	for k, v := range values {
		if k != "id" {
			row[k] = v
		}
	}
	s.rows[id] = row
	return nil
}

func (s *contentRepoStub) Update(_ context.Context, _ schema.Entity, id uuid.UUID, values map[string]any) error {
	row, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	for k, v := range values {
		row[k] = v
	}
	return nil
}

func (s *contentRepoStub) SetFields(_ context.Context, _ schema.Entity, id uuid.UUID, values map[string]any) error {
	return s.Update(context.Background(), schema.Entity{}, id, values)
}

func (s *contentRepoStub) Delete(_ context.Context, _ schema.Entity, id uuid.UUID) error {
	if _, ok := s.rows[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *contentRepoStub) DueScheduled(_ context.Context, _ schema.Entity, _ time.Time, _ int) ([]entities.Record, error) {
	return nil, nil
}

func (s *contentRepoStub) MarkPublished(_ context.Context, _ schema.Entity, id uuid.UUID, now time.Time, _ any) error {
	row, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	row["status"] = schema.StatusPublished
	if _, ok := row["published_at"].(time.Time); !ok {
		row["published_at"] = now
	}
	return nil
}

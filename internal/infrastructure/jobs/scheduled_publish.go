package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"agency-cms.backend/internal/domain/entities"
	"agency-cms.backend/internal/domain/schema"
)

type contentStore interface {
	DueScheduled(ctx context.Context, e schema.Entity, now time.Time, limit int) ([]entities.Record, error)
	MarkPublished(ctx context.Context, e schema.Entity, id uuid.UUID, now time.Time, by any) error
}

type cacheInvalidator interface {
	InvalidateEntity(ctx context.Context, entity string) error
}

// ScheduledPublishJob promotes draft rows to published once their
// scheduled time has passed.
type ScheduledPublishJob struct {
	repo     contentStore
	cache    cacheInvalidator
	interval time.Duration
	stop     chan struct{}
}

func NewScheduledPublishJob(repo contentStore, cache cacheInvalidator) *ScheduledPublishJob {
	return &ScheduledPublishJob{
		repo:     repo,
		cache:    cache,
		interval: 30 * time.Second, // Check every 30 seconds
		stop:     make(chan struct{}),
	}
}

func (j *ScheduledPublishJob) Start(ctx context.Context) {
	log.Println("🕐 Starting scheduled publish job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Scheduled publish job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Scheduled publish job stopped")
			return
		case <-ticker.C:
			j.processDue(ctx)
		}
	}
}

func (j *ScheduledPublishJob) Stop() {
	close(j.stop)
}

func (j *ScheduledPublishJob) processDue(ctx context.Context) {
	now := time.Now().UTC()

	for _, e := range schema.All() {
		if e.Lifecycle != schema.LifecycleStatus || !e.HasField("scheduled_for") {
			continue
		}

		due, err := j.repo.DueScheduled(ctx, e, now, 100)
		if err != nil {
			log.Printf("❌ Error fetching due %s: %v", e.Name, err)
			continue
		}

		if len(due) == 0 {
			continue
		}

		log.Printf("🔄 Publishing %d scheduled %s...", len(due), e.Name)

		published := 0
		for _, rec := range due {
			id, ok := rec.ID()
			if !ok {
				continue
			}
			if err := j.repo.MarkPublished(ctx, e, id, now, nil); err != nil {
				log.Printf("❌ Error publishing %s %s: %v", e.Name, id, err)
				continue
			}
			published++
		}

		if published > 0 {
			if j.cache != nil {
				if err := j.cache.InvalidateEntity(ctx, e.Name); err != nil {
					log.Printf("❌ Error invalidating %s cache: %v", e.Name, err)
				}
			}
			log.Printf("✅ Published %d scheduled %s", published, e.Name)
		}
	}
}

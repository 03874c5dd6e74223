package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 generates a new UUID v7. Time-ordered ids keep the
// created_at tiebreaker stable for rows inserted in the same millisecond.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Like defines the like model based on the 'likes' table.
// At most one like exists per (AuthorID, Target) pair; the store enforces it.
// Likes are created and destroyed, never updated.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id"`
	Target    TargetRef `json:"target"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment defines the comment model based on the 'comments' table.
// Comments go through the same moderation lifecycle as content: only
// APPROVED comments are visible in assembled views.
type Comment struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	AuthorID   uuid.UUID     `json:"authorId" db:"author_id"`
	Content    string        `json:"content" db:"content"`
	Target     TargetRef     `json:"target"`
	Status     ContentStatus `json:"status" db:"status"`
	ReviewerID *uuid.UUID    `json:"reviewerId,omitempty" db:"reviewer_id"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}

// LikeTarget returns the reaction target reference for this comment itself.
func (c *Comment) LikeTarget() TargetRef {
	return TargetRef{Kind: TargetComment, ID: c.ID}
}

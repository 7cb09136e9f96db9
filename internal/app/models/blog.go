package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog defines the blog model based on the 'blogs' table.
// ReviewerID is non-nil exactly when Status is a decided state.
type Blog struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	AuthorID   uuid.UUID     `json:"authorId" db:"author_id"` // Immutable after creation
	Title      string        `json:"title" db:"title"`
	Content    string        `json:"content" db:"content"`
	Tags       []string      `json:"tags,omitempty" db:"tags"`
	Status     ContentStatus `json:"status" db:"status"`
	ReviewerID *uuid.UUID    `json:"reviewerId,omitempty" db:"reviewer_id"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}

// Target returns the reaction target reference for this blog.
func (b *Blog) Target() TargetRef {
	return TargetRef{Kind: TargetBlog, ID: b.ID}
}

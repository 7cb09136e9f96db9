package models

import (
	"time"

	"github.com/google/uuid"
)

// Project defines the project model based on the 'projects' table.
type Project struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	AuthorID     uuid.UUID     `json:"authorId" db:"author_id"` // Immutable after creation
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	SourceLink   string        `json:"sourceLink" db:"source_link"`
	DeployedLink string        `json:"deployedLink,omitempty" db:"deployed_link"`
	Tags         []string      `json:"tags,omitempty" db:"tags"`
	TechStack    []string      `json:"techStack,omitempty" db:"tech_stack"`
	Status       ContentStatus `json:"status" db:"status"`
	ReviewerID   *uuid.UUID    `json:"reviewerId,omitempty" db:"reviewer_id"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

// Target returns the reaction target reference for this project.
func (p *Project) Target() TargetRef {
	return TargetRef{Kind: TargetProject, ID: p.ID}
}

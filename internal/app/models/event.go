package models

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the event model based on the 'events' table.
// Participants is a set: joining twice is a no-op, leaving removes membership.
type Event struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	AuthorID        uuid.UUID     `json:"authorId" db:"author_id"` // Immutable after creation
	Title           string        `json:"title" db:"title"`
	Description     string        `json:"description" db:"description"`
	ImageURL        string        `json:"imageUrl,omitempty" db:"image_url"`
	Date            time.Time     `json:"date" db:"date"`
	DurationMinutes int           `json:"durationMinutes" db:"duration_minutes"`
	Venue           string        `json:"venue" db:"venue"`
	EventType       EventType     `json:"eventType" db:"event_type"`
	Tags            []string      `json:"tags,omitempty" db:"tags"`
	Status          ContentStatus `json:"status" db:"status"`
	ReviewerID      *uuid.UUID    `json:"reviewerId,omitempty" db:"reviewer_id"`
	ParticipantIDs  []uuid.UUID   `json:"participantIds,omitempty" db:"-"`
	WinnerID        *uuid.UUID    `json:"winnerId,omitempty" db:"winner_id"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}

// Target returns the reaction target reference for this event.
func (e *Event) Target() TargetRef {
	return TargetRef{Kind: TargetEvent, ID: e.ID}
}

// HasParticipant reports whether the user is in the participant set.
func (e *Event) HasParticipant(userID uuid.UUID) bool {
	for _, id := range e.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

// EventRepository is an in-memory implementation of repositories.EventRepository
type EventRepository struct {
	mu     sync.RWMutex
	events map[uuid.UUID]models.Event
}

// NewEventRepository creates a new in-memory event repository
func NewEventRepository() repositories.EventRepository {
	return &EventRepository{
		events: make(map[uuid.UUID]models.Event),
	}
}

// Create adds a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = models.StatusPending
	}

	r.events[event.ID] = cloneEvent(*event)
	return nil
}

// GetByID retrieves an event by ID, participants included
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	out := cloneEvent(event)
	return &out, nil
}

// Update replaces the stored event. The participant set is managed through
// AddParticipant/RemoveParticipant and survives updates untouched.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.events[event.ID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	event.UpdatedAt = time.Now()
	updated := cloneEvent(*event)
	updated.ParticipantIDs = stored.ParticipantIDs
	r.events[event.ID] = updated
	return nil
}

// Delete removes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

// List returns events matching the filter, newest first
func (r *EventRepository) List(ctx context.Context, filter repositories.ContentFilter) ([]models.Event, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.AuthorID != nil && e.AuthorID != *filter.AuthorID {
			continue
		}
		matched = append(matched, cloneEvent(e))
	}
	sortEvents(matched)

	total := int64(len(matched))
	start, end := sliceBounds(filter.Page, filter.PageSize, len(matched))
	return matched[start:end], total, nil
}

// Review decides a pending event. Already-decided events are not re-reviewable.
func (r *EventRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	if event.Status != models.StatusPending {
		return nil, apperrors.ErrInvalidStateTransition
	}
	event.Status = status
	event.ReviewerID = &reviewerID
	event.UpdatedAt = time.Now()
	r.events[id] = event
	out := cloneEvent(event)
	return &out, nil
}

// AddParticipant adds the user to the participant set. Re-joining is a no-op.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	for _, id := range event.ParticipantIDs {
		if id == userID {
			return nil
		}
	}
	event.ParticipantIDs = append(event.ParticipantIDs, userID)
	r.events[eventID] = event
	return nil
}

// RemoveParticipant removes the user from the participant set
func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	for i, id := range event.ParticipantIDs {
		if id == userID {
			event.ParticipantIDs = append(event.ParticipantIDs[:i], event.ParticipantIDs[i+1:]...)
			r.events[eventID] = event
			return nil
		}
	}
	return apperrors.ErrNotParticipant
}

// SetWinner records the event winner
func (r *EventRepository) SetWinner(ctx context.Context, eventID, winnerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	event.WinnerID = &winnerID
	event.UpdatedAt = time.Now()
	r.events[eventID] = event
	return nil
}

// ListByParticipant returns the events the user has joined, newest first
func (r *EventRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	joined := make([]models.Event, 0)
	for _, e := range r.events {
		for _, id := range e.ParticipantIDs {
			if id == userID {
				joined = append(joined, cloneEvent(e))
				break
			}
		}
	}
	sortEvents(joined)
	return joined, nil
}

func sortEvents(events []models.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.After(events[j].CreatedAt)
		}
		return events[i].ID.String() < events[j].ID.String()
	})
}

// cloneEvent deep-copies the participant slice so callers never alias store state.
func cloneEvent(e models.Event) models.Event {
	if len(e.ParticipantIDs) > 0 {
		ids := make([]uuid.UUID, len(e.ParticipantIDs))
		copy(ids, e.ParticipantIDs)
		e.ParticipantIDs = ids
	}
	return e
}

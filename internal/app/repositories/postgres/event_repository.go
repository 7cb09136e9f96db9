package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

var eventColumns = []string{
	"id", "author_id", "title", "description", "image_url", "date",
	"duration_minutes", "venue", "event_type", "tags", "status",
	"reviewer_id", "winner_id", "created_at", "updated_at",
}

// EventRepository handles event database operations, including the
// event_participants join table.
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) repositories.EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
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

	sql, args, err := r.sb.Insert("events").
		Columns(eventColumns...).
		Values(
			event.ID, event.AuthorID, event.Title, event.Description, event.ImageURL,
			event.Date, event.DurationMinutes, event.Venue, event.EventType, event.Tags,
			event.Status, event.ReviewerID, event.WinnerID, event.CreatedAt, event.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert event query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting event")
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID, participants included
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Msg("Error scanning event row")
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.ParticipantIDs, err = r.participantIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Update replaces the event's mutable fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now()

	sql, args, err := r.sb.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("image_url", event.ImageURL).
		Set("date", event.Date).
		Set("duration_minutes", event.DurationMinutes).
		Set("venue", event.Venue).
		Set("event_type", event.EventType).
		Set("tags", event.Tags).
		Set("status", event.Status).
		Set("reviewer_id", event.ReviewerID).
		Set("winner_id", event.WinnerID).
		Set("updated_at", event.UpdatedAt).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error updating event")
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes an event by ID. Participant rows go with it via FK cascade.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting event")
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// List returns events matching the filter with pagination, newest first.
// Participant sets are not loaded for listings.
func (r *EventRepository) List(ctx context.Context, filter repositories.ContentFilter) ([]models.Event, int64, error) {
	where := contentWhere(filter)

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("events").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count events query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting events")
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}
	if total == 0 {
		return []models.Event{}, 0, nil
	}

	builder := r.sb.Select(eventColumns...).
		From("events").
		Where(where).
		OrderBy("created_at DESC", "id ASC")
	builder = applyPaging(builder, filter.Page, filter.PageSize)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing events")
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, total, nil
}

// Review decides a pending event in a single conditional update.
func (r *EventRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Event, error) {
	sql, args, err := r.sb.Update("events").
		Set("status", status).
		Set("reviewer_id", reviewerID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(eventColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidStateTransition
		}
		logger.Error().Err(err).Msg("Error reviewing event")
		return nil, fmt.Errorf("failed to review event: %w", err)
	}
	return event, nil
}

// AddParticipant inserts into the participant set. Re-joining is a no-op
// thanks to ON CONFLICT DO NOTHING on the composite primary key.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	sql, args, err := r.sb.Insert("event_participants").
		Columns("event_id", "user_id", "joined_at").
		Values(eventID, userID, time.Now()).
		Suffix("ON CONFLICT (event_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add participant query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error adding event participant")
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// RemoveParticipant removes the user from the participant set
func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	sql, args, err := r.sb.Delete("event_participants").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove participant query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error removing event participant")
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotParticipant
	}
	return nil
}

// SetWinner records the event winner
func (r *EventRepository) SetWinner(ctx context.Context, eventID, winnerID uuid.UUID) error {
	sql, args, err := r.sb.Update("events").
		Set("winner_id", winnerID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set winner query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error setting event winner")
		return fmt.Errorf("failed to set winner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// ListByParticipant returns the events the user has joined, newest first
func (r *EventRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	sql, args, err := r.sb.Select(prefixColumns("e", eventColumns)...).
		From("events e").
		Join("event_participants ep ON ep.event_id = e.id").
		Where(squirrel.Eq{"ep.user_id": userID}).
		OrderBy("e.created_at DESC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events by participant query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing events by participant")
		return nil, fmt.Errorf("failed to list events by participant: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (r *EventRepository) participantIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := r.sb.Select("user_id").
		From("event_participants").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("joined_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build participants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching event participants")
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return ids, nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID, &event.AuthorID, &event.Title, &event.Description, &event.ImageURL,
		&event.Date, &event.DurationMinutes, &event.Venue, &event.EventType, &event.Tags,
		&event.Status, &event.ReviewerID, &event.WinnerID, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func prefixColumns(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

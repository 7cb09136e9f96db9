package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/auth"
	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/filestorage"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

const eventImageDir = "events"

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, authorID uuid.UUID, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error)
	GetEventByID(ctx context.Context, id uuid.UUID, viewer *models.User) (*dto.EventDetailResponse, error)
	GetApprovedEvents(ctx context.Context, page, size int) (*dto.EventListResponse, error)
	GetAllEvents(ctx context.Context, status *models.ContentStatus, page, size int) (*dto.EventListResponse, error)
	UpdateEvent(ctx context.Context, caller *models.User, id uuid.UUID, req *dto.UpdateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, caller *models.User, id uuid.UUID) error
	ReviewEvent(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.EventResponse, error)
	JoinEvent(ctx context.Context, callerID, eventID uuid.UUID) error
	LeaveEvent(ctx context.Context, callerID, eventID uuid.UUID) error
	SetWinner(ctx context.Context, caller *models.User, eventID, winnerID uuid.UUID) (*dto.EventResponse, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	stores    *repositories.Stores
	storage   filestorage.FileStorage
	assembler *viewAssembler
}

// NewEventService creates a new EventService
func NewEventService(stores *repositories.Stores, storage filestorage.FileStorage) EventService {
	return &eventServiceImpl{
		stores:    stores,
		storage:   storage,
		assembler: newViewAssembler(stores),
	}
}

// CreateEvent publishes a new event in PENDING state. The image, if present,
// goes through the blob storage collaborator first.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, authorID uuid.UUID, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if image != nil {
		imageURL, err = s.storage.SaveFileWithPath(image, eventImageDir)
		if err != nil {
			return nil, apperrors.NewDependencyError("failed to store event image", err)
		}
	}

	event := &models.Event{
		AuthorID:        authorID,
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        imageURL,
		Date:            date,
		DurationMinutes: req.DurationMinutes,
		Venue:           req.Venue,
		EventType:       models.EventType(req.EventType),
		Tags:            req.Tags,
		Status:          models.StatusPending,
	}
	if err := s.stores.Events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return s.assemble(ctx, event, uuid.Nil)
}

// GetEventByID returns the full assembled event view: author, reviewer and
// winner projections, the participant list, reaction summary, and the
// APPROVED comment thread with each comment enriched one level.
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id uuid.UUID, viewer *models.User) (*dto.EventDetailResponse, error) {
	event, err := s.stores.Events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Status != models.StatusApproved && !canSeeUndecided(viewer, event.AuthorID) {
		return nil, apperrors.ErrEventNotFound
	}

	viewerID := uuid.Nil
	if viewer != nil {
		viewerID = viewer.ID
	}

	approved := models.StatusApproved
	comments, err := s.stores.Comments.ListByTarget(ctx, event.Target(), &approved)
	if err != nil {
		return nil, fmt.Errorf("error listing event comments: %w", err)
	}

	ids := []uuid.UUID{event.AuthorID}
	if event.ReviewerID != nil {
		ids = append(ids, *event.ReviewerID)
	}
	if event.WinnerID != nil {
		ids = append(ids, *event.WinnerID)
	}
	ids = append(ids, event.ParticipantIDs...)
	commentIDs := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
		commentIDs = append(commentIDs, c.ID)
	}

	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}
	eventReactions, err := s.assembler.reactions(ctx, models.TargetEvent, []uuid.UUID{event.ID}, viewerID)
	if err != nil {
		return nil, err
	}
	commentReactions, err := s.assembler.reactions(ctx, models.TargetComment, commentIDs, viewerID)
	if err != nil {
		return nil, err
	}

	participants := make([]dto.UserSummary, 0, len(event.ParticipantIDs))
	for _, pid := range event.ParticipantIDs {
		if summary := summaryFor(users, pid); summary != nil {
			participants = append(participants, *summary)
		}
	}
	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentResponses = append(commentResponses, buildCommentResponse(&comments[i], users, commentReactions))
	}

	return &dto.EventDetailResponse{
		EventResponse: buildEventResponse(event, users, eventReactions),
		Participants:  participants,
		Comments:      commentResponses,
	}, nil
}

// GetApprovedEvents returns the public listing
func (s *eventServiceImpl) GetApprovedEvents(ctx context.Context, page, size int) (*dto.EventListResponse, error) {
	approved := models.StatusApproved
	return s.list(ctx, repositories.ContentFilter{Status: &approved, Page: page, PageSize: size})
}

// GetAllEvents returns the moderation listing, optionally filtered by status
func (s *eventServiceImpl) GetAllEvents(ctx context.Context, status *models.ContentStatus, page, size int) (*dto.EventListResponse, error) {
	return s.list(ctx, repositories.ContentFilter{Status: status, Page: page, PageSize: size})
}

func (s *eventServiceImpl) list(ctx context.Context, filter repositories.ContentFilter) (*dto.EventListResponse, error) {
	events, total, err := s.stores.Events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(events)*2)
	for _, e := range events {
		ids = append(ids, e.AuthorID)
		if e.ReviewerID != nil {
			ids = append(ids, *e.ReviewerID)
		}
		if e.WinnerID != nil {
			ids = append(ids, *e.WinnerID)
		}
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, buildEventResponse(&events[i], users, nil))
	}
	return &dto.EventListResponse{
		Events:     responses,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateEvent edits an event. Only the author edits; a replacement image
// deletes the previous blob.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, caller *models.User, id uuid.UUID, req *dto.UpdateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error) {
	event, err := s.stores.Events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModifyContent(caller.ID, event.AuthorID) {
		return nil, apperrors.NewForbiddenError("only the author can edit this event")
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Date != "" {
		date, err := parseEventDate(req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.DurationMinutes > 0 {
		event.DurationMinutes = req.DurationMinutes
	}
	if req.Venue != "" {
		event.Venue = req.Venue
	}
	if req.EventType != "" {
		event.EventType = models.EventType(req.EventType)
	}
	if req.Tags != nil {
		event.Tags = req.Tags
	}
	if image != nil {
		imageURL, err := s.storage.SaveFileWithPath(image, eventImageDir)
		if err != nil {
			return nil, apperrors.NewDependencyError("failed to store event image", err)
		}
		if event.ImageURL != "" {
			if err := s.storage.DeleteFile(event.ImageURL); err != nil {
				logger.Warn().Err(err).Str("eventId", id.String()).Msg("Failed to delete replaced event image")
			}
		}
		event.ImageURL = imageURL
	}

	if err := s.stores.Events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return s.assemble(ctx, event, caller.ID)
}

// DeleteEvent removes an event, its image blob, and everything attached to it
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, caller *models.User, id uuid.UUID) error {
	event, err := s.stores.Events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanDeleteContent(caller.ID, event.AuthorID, caller.RoleType) {
		return apperrors.NewForbiddenError("only the author or an admin can delete this event")
	}

	if err := s.stores.Events.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if event.ImageURL != "" {
		if err := s.storage.DeleteFile(event.ImageURL); err != nil {
			logger.Warn().Err(err).Str("eventId", id.String()).Msg("Failed to delete event image")
		}
	}
	return detachReactions(ctx, s.stores, event.Target())
}

// ReviewEvent decides a pending event
func (s *eventServiceImpl) ReviewEvent(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.EventResponse, error) {
	if !auth.CanReview(caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only admins can review events")
	}
	if !status.Decided() {
		return nil, apperrors.NewValidationError("review status must be APPROVED or REJECTED")
	}

	event, err := s.stores.Events.Review(ctx, id, status, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, event, caller.ID)
}

// JoinEvent adds the caller to an approved event's participant set.
// Joining twice is a no-op.
func (s *eventServiceImpl) JoinEvent(ctx context.Context, callerID, eventID uuid.UUID) error {
	event, err := s.stores.Events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != models.StatusApproved {
		return apperrors.NewValidationError("cannot join an event that is not approved")
	}
	return s.stores.Events.AddParticipant(ctx, eventID, callerID)
}

// LeaveEvent removes the caller from the participant set
func (s *eventServiceImpl) LeaveEvent(ctx context.Context, callerID, eventID uuid.UUID) error {
	if _, err := s.stores.Events.GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.stores.Events.RemoveParticipant(ctx, eventID, callerID)
}

// SetWinner declares an event winner. Author or admin only, and the winner
// must be a participant.
func (s *eventServiceImpl) SetWinner(ctx context.Context, caller *models.User, eventID, winnerID uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.stores.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageEvent(caller.ID, event.AuthorID, caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only the event author or an admin can set the winner")
	}
	if !event.HasParticipant(winnerID) {
		return nil, apperrors.ErrNotParticipant
	}

	if err := s.stores.Events.SetWinner(ctx, eventID, winnerID); err != nil {
		return nil, fmt.Errorf("error setting event winner: %w", err)
	}
	event.WinnerID = &winnerID
	return s.assemble(ctx, event, caller.ID)
}

func (s *eventServiceImpl) assemble(ctx context.Context, event *models.Event, viewerID uuid.UUID) (*dto.EventResponse, error) {
	ids := []uuid.UUID{event.AuthorID}
	if event.ReviewerID != nil {
		ids = append(ids, *event.ReviewerID)
	}
	if event.WinnerID != nil {
		ids = append(ids, *event.WinnerID)
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}
	reactions, err := s.assembler.reactions(ctx, models.TargetEvent, []uuid.UUID{event.ID}, viewerID)
	if err != nil {
		return nil, err
	}
	resp := buildEventResponse(event, users, reactions)
	return &resp, nil
}

func parseEventDate(raw string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date must be RFC 3339, e.g. 2026-03-14T18:00:00Z")
	}
	return date, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

func TestCreateEventValidatesDate(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)

	_, err := svc.CreateEvent(ctx, author.ID, &dto.CreateEventRequest{
		Title:       "Algo night",
		Description: "Weekly DSA grind in lab 3.",
		Date:        "next tuesday",
		Venue:       "Lab 3",
		EventType:   string(models.EventDSA),
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	event, err := svc.CreateEvent(ctx, author.ID, &dto.CreateEventRequest{
		Title:       "Algo night",
		Description: "Weekly DSA grind in lab 3.",
		Date:        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		Venue:       "Lab 3",
		EventType:   string(models.EventDSA),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusPending), event.Status)
}

func TestJoinEvent(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)

	require.NoError(t, svc.JoinEvent(ctx, member.ID, event.ID))
	// Joining twice is a no-op
	require.NoError(t, svc.JoinEvent(ctx, member.ID, event.ID))

	stored, err := stores.Events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, stored.ParticipantIDs, 1)
}

func TestJoinPendingEventRejected(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusPending)

	err := svc.JoinEvent(ctx, member.ID, event.ID)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLeaveEvent(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)

	require.NoError(t, svc.JoinEvent(ctx, member.ID, event.ID))
	require.NoError(t, svc.LeaveEvent(ctx, member.ID, event.ID))

	err := svc.LeaveEvent(ctx, member.ID, event.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotParticipant)
}

func TestSetWinnerRequiresParticipant(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	outsider := seedUser(t, stores, "carol", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)
	require.NoError(t, svc.JoinEvent(ctx, member.ID, event.ID))

	_, err := svc.SetWinner(ctx, author, event.ID, outsider.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotParticipant)

	resp, err := svc.SetWinner(ctx, author, event.ID, member.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Winner)
	assert.Equal(t, "bob", resp.Winner.Username)
}

func TestSetWinnerCapability(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)
	require.NoError(t, svc.JoinEvent(ctx, member.ID, event.ID))

	_, err := svc.SetWinner(ctx, member, event.ID, member.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.SetWinner(ctx, admin, event.ID, member.ID)
	assert.NoError(t, err, "admins can declare winners for any event")
}

func TestGetEventDetailAssembly(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)
	require.NoError(t, svc.JoinEvent(ctx, member.ID, event.ID))

	approvedComment := seedComment(t, stores, member.ID, event.Target(), models.StatusApproved)
	seedComment(t, stores, member.ID, event.Target(), models.StatusPending)
	seedLike(t, stores, member.ID, event.Target())
	seedLike(t, stores, member.ID, approvedComment.LikeTarget())

	detail, err := svc.GetEventByID(ctx, event.ID, member)
	require.NoError(t, err)

	require.Len(t, detail.Participants, 1)
	assert.Equal(t, "bob", detail.Participants[0].Username)

	// Only the approved part of the thread is shown
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, approvedComment.ID.String(), detail.Comments[0].ID)

	require.NotNil(t, detail.ReactionSummary)
	assert.Equal(t, int64(1), detail.LikeCount)
	assert.True(t, detail.ViewerHasLiked)

	// Comments are enriched one level down
	require.NotNil(t, detail.Comments[0].ReactionSummary)
	assert.Equal(t, int64(1), detail.Comments[0].LikeCount)
	assert.True(t, detail.Comments[0].ViewerHasLiked)
}

func TestPendingEventVisibility(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	other := seedUser(t, stores, "bob", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusPending)

	_, err := svc.GetEventByID(ctx, event.ID, author)
	assert.NoError(t, err)

	_, err = svc.GetEventByID(ctx, event.ID, other)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestDeleteEventDetachesReactions(t *testing.T) {
	stores := newTestStores()
	svc := NewEventService(stores, nil)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	member := seedUser(t, stores, "bob", models.RoleUser)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)
	seedComment(t, stores, member.ID, event.Target(), models.StatusApproved)
	seedLike(t, stores, member.ID, event.Target())

	require.NoError(t, svc.DeleteEvent(ctx, author, event.ID))

	comments, err := stores.Comments.ListByTarget(ctx, event.Target(), nil)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

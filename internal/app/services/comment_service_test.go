package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

func TestCreateCommentStartsPending(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	comment, err := svc.CreateComment(ctx, fan.ID, models.TargetBlog, blog.ID, &dto.CreateCommentRequest{
		Content: "Tried this on our cluster, worked great.",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusPending), comment.Status)
	require.NotNil(t, comment.Author)
	assert.Equal(t, "bob", comment.Author.Username)
}

func TestCreateCommentMissingTarget(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	fan := seedUser(t, stores, "bob", models.RoleUser)

	_, err := svc.CreateComment(ctx, fan.ID, models.TargetEvent, uuid.New(), &dto.CreateCommentRequest{Content: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestCreateCommentOnCommentRejected(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	comment := seedComment(t, stores, author.ID, blog.Target(), models.StatusApproved)

	_, err := svc.CreateComment(ctx, author.ID, models.TargetComment, comment.ID, &dto.CreateCommentRequest{Content: "reply"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteCommentCapability(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	other := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	comment := seedComment(t, stores, author.ID, blog.Target(), models.StatusApproved)
	err := svc.DeleteComment(ctx, other, comment.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteComment(ctx, author, comment.ID))

	comment = seedComment(t, stores, author.ID, blog.Target(), models.StatusApproved)
	require.NoError(t, svc.DeleteComment(ctx, admin, comment.ID), "admins can delete any comment")
}

func TestDeleteCommentRemovesItsLikes(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	comment := seedComment(t, stores, author.ID, blog.Target(), models.StatusApproved)
	seedLike(t, stores, fan.ID, comment.LikeTarget())

	require.NoError(t, svc.DeleteComment(ctx, author, comment.ID))

	likes, err := stores.Likes.ListByTargets(ctx, models.TargetComment, []uuid.UUID{comment.ID})
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestReviewComment(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	comment := seedComment(t, stores, author.ID, blog.Target(), models.StatusPending)

	reviewed, err := svc.ReviewComment(ctx, admin, comment.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusRejected), reviewed.Status)

	_, err = svc.ReviewComment(ctx, admin, comment.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestGetAllCommentsCarriesTargetTitles(t *testing.T) {
	stores := newTestStores()
	svc := NewCommentService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	event := seedEvent(t, stores, author.ID, models.StatusApproved)
	seedComment(t, stores, author.ID, blog.Target(), models.StatusPending)
	seedComment(t, stores, author.ID, event.Target(), models.StatusPending)

	list, err := svc.GetAllComments(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Comments, 2)

	titles := map[string]string{}
	for _, c := range list.Comments {
		titles[c.TargetKind] = c.TargetTitle
	}
	assert.Equal(t, blog.Title, titles[string(models.TargetBlog)])
	assert.Equal(t, event.Title, titles[string(models.TargetEvent)])
}

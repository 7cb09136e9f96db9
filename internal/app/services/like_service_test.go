package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

func TestLikeAndUnlike(t *testing.T) {
	stores := newTestStores()
	svc := NewLikeService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	like, err := svc.Like(ctx, fan.ID, models.TargetBlog, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.TargetBlog), like.TargetKind)
	assert.Equal(t, blog.ID.String(), like.TargetID)

	require.NoError(t, svc.Unlike(ctx, fan.ID, models.TargetBlog, blog.ID))

	likes, err := stores.Likes.ListByTargets(ctx, models.TargetBlog, []uuid.UUID{blog.ID})
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestLikeTwiceRejected(t *testing.T) {
	stores := newTestStores()
	svc := NewLikeService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	_, err := svc.Like(ctx, fan.ID, models.TargetBlog, blog.ID)
	require.NoError(t, err)

	_, err = svc.Like(ctx, fan.ID, models.TargetBlog, blog.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyLiked)
}

func TestUnlikeWithoutLike(t *testing.T) {
	stores := newTestStores()
	svc := NewLikeService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	err := svc.Unlike(ctx, fan.ID, models.TargetBlog, blog.ID)
	assert.ErrorIs(t, err, apperrors.ErrLikeNotFound)
}

func TestLikeMissingTarget(t *testing.T) {
	stores := newTestStores()
	svc := NewLikeService(stores)
	ctx := context.Background()
	fan := seedUser(t, stores, "bob", models.RoleUser)

	_, err := svc.Like(ctx, fan.ID, models.TargetProject, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestLikeComment(t *testing.T) {
	stores := newTestStores()
	svc := NewLikeService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	comment := seedComment(t, stores, author.ID, blog.Target(), models.StatusApproved)

	like, err := svc.Like(ctx, fan.ID, models.TargetComment, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.TargetComment), like.TargetKind)
}

func TestLikesOnDifferentTargetsAreIndependent(t *testing.T) {
	stores := newTestStores()
	svc := NewLikeService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	project := seedProject(t, stores, author.ID, models.StatusApproved)

	_, err := svc.Like(ctx, fan.ID, models.TargetBlog, blog.ID)
	require.NoError(t, err)
	_, err = svc.Like(ctx, fan.ID, models.TargetProject, project.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unlike(ctx, fan.ID, models.TargetBlog, blog.ID))

	remaining, err := stores.Likes.ListByTargets(ctx, models.TargetProject, []uuid.UUID{project.ID})
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "unliking the blog leaves the project like alone")
}

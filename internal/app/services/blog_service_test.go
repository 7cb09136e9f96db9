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

func TestCreateBlogStartsPending(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)

	blog, err := svc.CreateBlog(ctx, author.ID, &dto.CreateBlogRequest{
		Title:   "Escape analysis in practice",
		Content: "What actually moves to the heap, and why it matters.",
		Tags:    []string{"go", "performance"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusPending), blog.Status)
	require.NotNil(t, blog.Author)
	assert.Equal(t, "alice", blog.Author.Username)
	assert.Nil(t, blog.Reviewer)
	require.NotNil(t, blog.ReactionSummary)
	assert.Equal(t, int64(0), blog.LikeCount)
}

func TestReviewBlog(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	blog := seedBlog(t, stores, author.ID, models.StatusPending)

	reviewed, err := svc.ReviewBlog(ctx, admin, blog.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusApproved), reviewed.Status)
	require.NotNil(t, reviewed.Reviewer)
	assert.Equal(t, "mod", reviewed.Reviewer.Username)
}

func TestReviewBlogTwiceFails(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	blog := seedBlog(t, stores, author.ID, models.StatusPending)

	_, err := svc.ReviewBlog(ctx, admin, blog.ID, models.StatusApproved)
	require.NoError(t, err)

	_, err = svc.ReviewBlog(ctx, admin, blog.ID, models.StatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestReviewBlogRequiresAdmin(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusPending)

	_, err := svc.ReviewBlog(ctx, author, blog.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestReviewBlogRejectsPendingDecision(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	blog := seedBlog(t, stores, author.ID, models.StatusPending)

	_, err := svc.ReviewBlog(ctx, admin, blog.ID, models.StatusPending)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestReviewMissingBlog(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)

	_, err := svc.ReviewBlog(context.Background(), admin, uuid.New(), models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrBlogNotFound)
}

func TestPendingBlogVisibility(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	other := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusPending)

	_, err := svc.GetBlogByID(ctx, blog.ID, author)
	assert.NoError(t, err, "author sees own pending blog")

	_, err = svc.GetBlogByID(ctx, blog.ID, admin)
	assert.NoError(t, err, "admin sees pending blog")

	_, err = svc.GetBlogByID(ctx, blog.ID, other)
	assert.ErrorIs(t, err, apperrors.ErrBlogNotFound, "other members do not")

	_, err = svc.GetBlogByID(ctx, blog.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrBlogNotFound, "anonymous viewers do not")
}

func TestApprovedListingExcludesUndecided(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	seedBlog(t, stores, author.ID, models.StatusPending)
	seedBlog(t, stores, author.ID, models.StatusRejected)
	approved := seedBlog(t, stores, author.ID, models.StatusApproved)

	list, err := svc.GetApprovedBlogs(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Blogs, 1)
	assert.Equal(t, approved.ID.String(), list.Blogs[0].ID)
	// Listings carry no reaction enrichment
	assert.Nil(t, list.Blogs[0].ReactionSummary)
	assert.Equal(t, int64(1), list.Pagination.TotalItems)
}

func TestGetAllBlogsStatusFilter(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	seedBlog(t, stores, author.ID, models.StatusPending)
	seedBlog(t, stores, author.ID, models.StatusApproved)

	pending := models.StatusPending
	list, err := svc.GetAllBlogs(ctx, &pending, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Blogs, 1)
	assert.Equal(t, string(models.StatusPending), list.Blogs[0].Status)

	list, err = svc.GetAllBlogs(ctx, nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list.Blogs, 2)
}

func TestUpdateBlogAuthorOnly(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	updated, err := svc.UpdateBlog(ctx, author, blog.ID, &dto.UpdateBlogRequest{Title: "Escape analysis, revisited"})
	require.NoError(t, err)
	assert.Equal(t, "Escape analysis, revisited", updated.Title)
	assert.Equal(t, string(models.StatusApproved), updated.Status, "editing leaves the moderation status alone")

	// Even admins cannot edit someone else's blog
	_, err = svc.UpdateBlog(ctx, admin, blog.ID, &dto.UpdateBlogRequest{Title: "hijacked"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteBlogCapability(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)
	other := seedUser(t, stores, "bob", models.RoleUser)

	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	err := svc.DeleteBlog(ctx, other, blog.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteBlog(ctx, author, blog.ID))

	blog = seedBlog(t, stores, author.ID, models.StatusApproved)
	require.NoError(t, svc.DeleteBlog(ctx, admin, blog.ID), "admins can delete any blog")
}

func TestDeleteBlogDetachesReactions(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)

	comment := seedComment(t, stores, fan.ID, blog.Target(), models.StatusApproved)
	seedLike(t, stores, fan.ID, blog.Target())
	seedLike(t, stores, fan.ID, comment.LikeTarget())

	require.NoError(t, svc.DeleteBlog(ctx, author, blog.ID))

	comments, err := stores.Comments.ListByTarget(ctx, blog.Target(), nil)
	require.NoError(t, err)
	assert.Empty(t, comments, "comments on the blog are gone")

	blogLikes, err := stores.Likes.ListByTargets(ctx, models.TargetBlog, []uuid.UUID{blog.ID})
	require.NoError(t, err)
	assert.Empty(t, blogLikes, "likes on the blog are gone")

	commentLikes, err := stores.Likes.ListByTargets(ctx, models.TargetComment, []uuid.UUID{comment.ID})
	require.NoError(t, err)
	assert.Empty(t, commentLikes, "likes on the blog's comments are gone")
}

func TestBlogViewerHasLiked(t *testing.T) {
	stores := newTestStores()
	svc := NewBlogService(stores)
	ctx := context.Background()
	author := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	bystander := seedUser(t, stores, "carol", models.RoleUser)
	blog := seedBlog(t, stores, author.ID, models.StatusApproved)
	seedLike(t, stores, fan.ID, blog.Target())

	resp, err := svc.GetBlogByID(ctx, blog.ID, fan)
	require.NoError(t, err)
	require.NotNil(t, resp.ReactionSummary)
	assert.Equal(t, int64(1), resp.LikeCount)
	assert.True(t, resp.ViewerHasLiked)

	resp, err = svc.GetBlogByID(ctx, blog.ID, bystander)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LikeCount)
	assert.False(t, resp.ViewerHasLiked)

	resp, err = svc.GetBlogByID(ctx, blog.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.LikeCount)
	assert.False(t, resp.ViewerHasLiked, "anonymous viewers never read as having liked")
}

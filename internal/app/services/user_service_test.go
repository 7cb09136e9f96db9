package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

func TestGetProfileShowsApprovedContributionsOnly(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)
	eventSvc := NewEventService(stores, nil)
	ctx := context.Background()
	alice := seedUser(t, stores, "alice", models.RoleUser)
	organizer := seedUser(t, stores, "bob", models.RoleUser)

	approvedBlog := seedBlog(t, stores, alice.ID, models.StatusApproved)
	seedBlog(t, stores, alice.ID, models.StatusPending)
	seedProject(t, stores, alice.ID, models.StatusApproved)
	event := seedEvent(t, stores, organizer.ID, models.StatusApproved)
	require.NoError(t, eventSvc.JoinEvent(ctx, alice.ID, event.ID))

	profile, err := svc.GetProfileByUsername(ctx, "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	require.Len(t, profile.Blogs, 1)
	assert.Equal(t, approvedBlog.ID.String(), profile.Blogs[0].ID)
	assert.Len(t, profile.Projects, 1)
	require.Len(t, profile.Events, 1)
	assert.Equal(t, event.ID.String(), profile.Events[0].ID)
}

func TestGetProfileCardsAreViewerRelative(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)
	ctx := context.Background()
	alice := seedUser(t, stores, "alice", models.RoleUser)
	fan := seedUser(t, stores, "bob", models.RoleUser)
	blog := seedBlog(t, stores, alice.ID, models.StatusApproved)
	seedLike(t, stores, fan.ID, blog.Target())

	profile, err := svc.GetProfileByUsername(ctx, "alice", fan)
	require.NoError(t, err)
	require.Len(t, profile.Blogs, 1)
	require.NotNil(t, profile.Blogs[0].ReactionSummary)
	assert.Equal(t, int64(1), profile.Blogs[0].LikeCount)
	assert.True(t, profile.Blogs[0].ViewerHasLiked)
}

func TestGetProfileUnknownUsername(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)

	_, err := svc.GetProfileByUsername(context.Background(), "ghost", nil)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)
	ctx := context.Background()
	alice := seedUser(t, stores, "alice", models.RoleUser)

	resp, err := svc.UpdateProfile(ctx, alice.ID, &dto.UpdateProfileRequest{
		Bio:    "Compilers and coffee.",
		Skills: []string{"go", "llvm"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Compilers and coffee.", resp.Bio)
	assert.Equal(t, []string{"go", "llvm"}, resp.Skills)
	assert.Equal(t, "Test alice", resp.FullName, "unset fields stay untouched")
}

func TestGetAllUsersAdminOnly(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)
	ctx := context.Background()
	member := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)

	_, err := svc.GetAllUsers(ctx, member, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	list, err := svc.GetAllUsers(ctx, admin, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list.Users, 2)
}

func TestChangeRole(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)
	ctx := context.Background()
	member := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)

	resp, err := svc.ChangeRole(ctx, admin, member.ID, models.RoleAlumni)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAlumni), resp.Role)

	_, err = svc.ChangeRole(ctx, member, admin.ID, models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Admins cannot demote themselves
	_, err = svc.ChangeRole(ctx, admin, admin.ID, models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteUser(t *testing.T) {
	stores := newTestStores()
	svc := NewUserService(stores, nil)
	ctx := context.Background()
	member := seedUser(t, stores, "alice", models.RoleUser)
	admin := seedUser(t, stores, "mod", models.RoleAdmin)

	err := svc.DeleteUser(ctx, admin, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "admins cannot delete themselves")

	require.NoError(t, svc.DeleteUser(ctx, admin, member.ID))
	_, err = stores.Users.GetByID(ctx, member.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

func testUser(username string) *models.User {
	return &models.User{
		RegNumber: "REG-" + username,
		Username:  username,
		FullName:  "Test " + username,
		Email:     username + "@campus.test",
		Password:  "hash",
		RoleType:  models.RoleUser,
	}
}

func TestUserUniquenessSentinels(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testUser("alice")))

	dup := testUser("bob")
	dup.Email = "alice@campus.test"
	assert.ErrorIs(t, repo.Create(ctx, dup), apperrors.ErrEmailAlreadyExists)

	dup = testUser("alice")
	dup.Email = "alice2@campus.test"
	dup.RegNumber = "REG-other"
	assert.ErrorIs(t, repo.Create(ctx, dup), apperrors.ErrUsernameExists)

	dup = testUser("carol")
	dup.RegNumber = "REG-alice"
	assert.ErrorIs(t, repo.Create(ctx, dup), apperrors.ErrRegNumberExists)
}

func TestUserListPagingNewestFirst(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	base := time.Now()
	for i, name := range []string{"alice", "bob", "carol"} {
		u := testUser(name)
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, u))
	}

	page, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "carol", page[0].Username)
	assert.Equal(t, "bob", page[1].Username)

	page, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "alice", page[0].Username)

	page, _, err = repo.List(ctx, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestRefreshTokenLookup(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	u := testUser("alice")
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.SetRefreshToken(ctx, u.ID, "tok-1"))

	found, err := repo.GetByRefreshToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	// Empty tokens never match, even before a token is ever set
	_, err = repo.GetByRefreshToken(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

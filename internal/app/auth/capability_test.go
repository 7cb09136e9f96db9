package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asrivastava/codecampus/internal/app/models"
)

func TestCanReview(t *testing.T) {
	assert.True(t, CanReview(models.RoleAdmin))
	assert.False(t, CanReview(models.RoleUser))
	assert.False(t, CanReview(models.RoleAlumni))
}

func TestCanModifyContent(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	assert.True(t, CanModifyContent(author, author))
	// Admins moderate through review, not edits, so identity is all that counts
	assert.False(t, CanModifyContent(other, author))
}

func TestCanDeleteContent(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	assert.True(t, CanDeleteContent(author, author, models.RoleUser))
	assert.True(t, CanDeleteContent(other, author, models.RoleAdmin))
	assert.False(t, CanDeleteContent(other, author, models.RoleUser))
	assert.False(t, CanDeleteContent(other, author, models.RoleAlumni))
}

func TestCanDeleteComment(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	assert.True(t, CanDeleteComment(author, author, models.RoleAlumni))
	assert.True(t, CanDeleteComment(other, author, models.RoleAdmin))
	assert.False(t, CanDeleteComment(other, author, models.RoleUser))
}

func TestCanManageEvent(t *testing.T) {
	organizer := uuid.New()
	other := uuid.New()

	assert.True(t, CanManageEvent(organizer, organizer, models.RoleUser))
	assert.True(t, CanManageEvent(other, organizer, models.RoleAdmin))
	assert.False(t, CanManageEvent(other, organizer, models.RoleUser))
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(models.RoleAdmin))
	assert.False(t, CanManageUsers(models.RoleUser))
	assert.False(t, CanManageUsers(models.RoleAlumni))
}

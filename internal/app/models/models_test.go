package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLikeTargetAcceptsAllKinds(t *testing.T) {
	id := uuid.New()
	for _, kind := range []TargetKind{TargetBlog, TargetProject, TargetEvent, TargetComment} {
		ref, ok := LikeTarget(kind, id)
		assert.True(t, ok, string(kind))
		assert.Equal(t, kind, ref.Kind)
		assert.Equal(t, id, ref.ID)
	}

	_, ok := LikeTarget(TargetKind("USER"), id)
	assert.False(t, ok)
}

func TestCommentTargetRejectsComments(t *testing.T) {
	id := uuid.New()
	for _, kind := range []TargetKind{TargetBlog, TargetProject, TargetEvent} {
		_, ok := CommentTarget(kind, id)
		assert.True(t, ok, string(kind))
	}

	ref, ok := CommentTarget(TargetComment, id)
	assert.False(t, ok)
	assert.Equal(t, TargetRef{}, ref)
}

func TestContentStatus(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ContentStatus("DRAFT").Valid())

	assert.False(t, StatusPending.Decided())
	assert.True(t, StatusApproved.Decided())
	assert.True(t, StatusRejected.Decided())
}

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAlumni.Valid())
	assert.False(t, RoleType("SUPERUSER").Valid())
}

func TestEventTypeValid(t *testing.T) {
	assert.True(t, EventHackathon.Valid())
	assert.True(t, EventOther.Valid())
	assert.False(t, EventType("MEETUP").Valid())
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{RoleType: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{RoleType: RoleUser}).IsAdmin())
}

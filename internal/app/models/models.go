package models

import (
	"github.com/google/uuid"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin  RoleType = "ADMIN"
	RoleUser   RoleType = "USER"
	RoleAlumni RoleType = "ALUMNI"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleAlumni:
		return true
	}
	return false
}

// ContentStatus is the moderation state shared by all content kinds and comments.
type ContentStatus string

const (
	StatusPending  ContentStatus = "PENDING"
	StatusApproved ContentStatus = "APPROVED"
	StatusRejected ContentStatus = "REJECTED"
)

// Valid reports whether the status is one of the known states.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether the status is a terminal moderation state.
// APPROVED and REJECTED are terminal; only PENDING items can be reviewed.
func (s ContentStatus) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// TargetKind identifies which kind of record a reaction points at.
type TargetKind string

const (
	TargetEvent   TargetKind = "EVENT"
	TargetProject TargetKind = "PROJECT"
	TargetBlog    TargetKind = "BLOG"
	TargetComment TargetKind = "COMMENT"
)

// TargetRef is a tagged reference to exactly one likeable/commentable record.
// It replaces the original schema's set of nullable per-kind foreign keys, so
// "exactly one target is set" holds by construction.
type TargetRef struct {
	Kind TargetKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

// LikeTarget builds a TargetRef and reports whether the kind is likeable.
func LikeTarget(kind TargetKind, id uuid.UUID) (TargetRef, bool) {
	switch kind {
	case TargetEvent, TargetProject, TargetBlog, TargetComment:
		return TargetRef{Kind: kind, ID: id}, true
	}
	return TargetRef{}, false
}

// CommentTarget builds a TargetRef and reports whether the kind is commentable.
// Comments on comments are not supported.
func CommentTarget(kind TargetKind, id uuid.UUID) (TargetRef, bool) {
	switch kind {
	case TargetEvent, TargetProject, TargetBlog:
		return TargetRef{Kind: kind, ID: id}, true
	}
	return TargetRef{}, false
}

// EventType categorizes an event.
type EventType string

const (
	EventQuiz      EventType = "QUIZ"
	EventDSA       EventType = "DSA"
	EventHackathon EventType = "HACKATHON"
	EventTechfest  EventType = "TECHFEST"
	EventOther     EventType = "OTHERS"
)

// Valid reports whether the event type is one of the known categories.
func (t EventType) Valid() bool {
	switch t {
	case EventQuiz, EventDSA, EventHackathon, EventTechfest, EventOther:
		return true
	}
	return false
}

// Package auth holds the capability predicates the services consult before
// mutating anything. Role checks live here so the rules are testable apart
// from HTTP middleware.
package auth

import (
	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
)

// CanReview reports whether the role may approve or reject submissions.
func CanReview(role models.RoleType) bool {
	return role == models.RoleAdmin
}

// CanModifyContent reports whether the caller may edit a content item.
// Only the author edits; admins moderate through review, not edits.
func CanModifyContent(callerID, authorID uuid.UUID) bool {
	return callerID == authorID
}

// CanDeleteContent reports whether the caller may delete a content item.
// Authors delete their own work, admins delete anything.
func CanDeleteContent(callerID, authorID uuid.UUID, role models.RoleType) bool {
	return callerID == authorID || role == models.RoleAdmin
}

// CanDeleteComment mirrors CanDeleteContent for comments.
func CanDeleteComment(callerID, authorID uuid.UUID, role models.RoleType) bool {
	return callerID == authorID || role == models.RoleAdmin
}

// CanManageEvent reports whether the caller may run event administration
// such as picking a winner or replacing the event image.
func CanManageEvent(callerID, authorID uuid.UUID, role models.RoleType) bool {
	return callerID == authorID || role == models.RoleAdmin
}

// CanManageUsers reports whether the role may list, promote or delete users.
func CanManageUsers(role models.RoleType) bool {
	return role == models.RoleAdmin
}

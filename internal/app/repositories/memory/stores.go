// Package memory provides in-memory implementations of the store interfaces.
// They back the test suite and local development; maps are guarded by a
// mutex per repository, mirroring the row-level atomicity of the SQL store.
package memory

import (
	"github.com/asrivastava/codecampus/internal/app/repositories"
)

// NewStores creates a full in-memory store set.
func NewStores() *repositories.Stores {
	return &repositories.Stores{
		Users:    NewUserRepository(),
		Blogs:    NewBlogRepository(),
		Projects: NewProjectRepository(),
		Events:   NewEventRepository(),
		Comments: NewCommentRepository(),
		Likes:    NewLikeRepository(),
	}
}

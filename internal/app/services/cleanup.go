package services

import (
	"context"
	"fmt"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

// detachReactions removes everything hanging off one content item: its likes,
// its comments, and the likes of those comments. The cleanup is a sequence of
// store calls, so a crash mid-way can leave strays until the next delete;
// reads never join against them because views are assembled from the content
// side.
func detachReactions(ctx context.Context, stores *repositories.Stores, target models.TargetRef) error {
	comments, err := stores.Comments.ListByTarget(ctx, target, nil)
	if err != nil {
		return fmt.Errorf("error listing comments for cleanup: %w", err)
	}
	for _, comment := range comments {
		if err := stores.Likes.DeleteByTarget(ctx, comment.LikeTarget()); err != nil {
			return fmt.Errorf("error deleting comment likes during cleanup: %w", err)
		}
	}
	if err := stores.Comments.DeleteByTarget(ctx, target); err != nil {
		return fmt.Errorf("error deleting comments during cleanup: %w", err)
	}
	if err := stores.Likes.DeleteByTarget(ctx, target); err != nil {
		return fmt.Errorf("error deleting likes during cleanup: %w", err)
	}

	logger.Debug().
		Str("targetKind", string(target.Kind)).
		Str("targetId", target.ID.String()).
		Int("comments", len(comments)).
		Msg("Detached reactions from deleted content")
	return nil
}

// resolveTarget checks that a reaction target exists and returns the
// kind-specific not-found error when it does not. Comments are valid like
// targets but not comment targets; callers gate that through the TargetRef
// constructors before reaching here.
func resolveTarget(ctx context.Context, stores *repositories.Stores, target models.TargetRef) error {
	switch target.Kind {
	case models.TargetBlog:
		_, err := stores.Blogs.GetByID(ctx, target.ID)
		return err
	case models.TargetProject:
		_, err := stores.Projects.GetByID(ctx, target.ID)
		return err
	case models.TargetEvent:
		_, err := stores.Events.GetByID(ctx, target.ID)
		return err
	case models.TargetComment:
		_, err := stores.Comments.GetByID(ctx, target.ID)
		return err
	}
	return apperrors.ErrResourceNotFound
}

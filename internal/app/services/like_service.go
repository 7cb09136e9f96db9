package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

// LikeService defines the interface for like operations
type LikeService interface {
	Like(ctx context.Context, authorID uuid.UUID, kind models.TargetKind, targetID uuid.UUID) (*dto.LikeResponse, error)
	Unlike(ctx context.Context, authorID uuid.UUID, kind models.TargetKind, targetID uuid.UUID) error
}

// likeServiceImpl implements LikeService
type likeServiceImpl struct {
	stores *repositories.Stores
}

// NewLikeService creates a new LikeService
func NewLikeService(stores *repositories.Stores) LikeService {
	return &likeServiceImpl{stores: stores}
}

// Like records a reaction. The target must exist, and a user likes a given
// target at most once.
func (s *likeServiceImpl) Like(ctx context.Context, authorID uuid.UUID, kind models.TargetKind, targetID uuid.UUID) (*dto.LikeResponse, error) {
	target, ok := models.LikeTarget(kind, targetID)
	if !ok {
		return nil, apperrors.NewValidationError("likes can target blogs, projects, events and comments only")
	}
	if err := resolveTarget(ctx, s.stores, target); err != nil {
		return nil, err
	}

	like := &models.Like{
		AuthorID: authorID,
		Target:   target,
	}
	if err := s.stores.Likes.Create(ctx, like); err != nil {
		return nil, err
	}

	return &dto.LikeResponse{
		ID:         like.ID.String(),
		TargetKind: string(like.Target.Kind),
		TargetID:   like.Target.ID.String(),
		CreatedAt:  formatTime(like.CreatedAt),
	}, nil
}

// Unlike removes exactly the caller's reaction on the target. Removing a
// reaction that does not exist is NotFound, not a no-op.
func (s *likeServiceImpl) Unlike(ctx context.Context, authorID uuid.UUID, kind models.TargetKind, targetID uuid.UUID) error {
	target, ok := models.LikeTarget(kind, targetID)
	if !ok {
		return apperrors.NewValidationError("likes can target blogs, projects, events and comments only")
	}

	if err := s.stores.Likes.DeleteByAuthorTarget(ctx, authorID, target); err != nil {
		if errors.Is(err, apperrors.ErrLikeNotFound) {
			return err
		}
		return fmt.Errorf("error removing like: %w", err)
	}
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

// LikeRepository is an in-memory implementation of repositories.LikeRepository
type LikeRepository struct {
	mu    sync.RWMutex
	likes map[uuid.UUID]models.Like
}

// NewLikeRepository creates a new in-memory like repository
func NewLikeRepository() repositories.LikeRepository {
	return &LikeRepository{
		likes: make(map[uuid.UUID]models.Like),
	}
}

// Create adds a like, rejecting duplicates per (author, target)
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.likes {
		if l.AuthorID == like.AuthorID && l.Target == like.Target {
			return apperrors.ErrAlreadyLiked
		}
	}

	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	r.likes[like.ID] = *like
	return nil
}

// DeleteByAuthorTarget removes the single like matching (author, target)
func (r *LikeRepository) DeleteByAuthorTarget(ctx context.Context, authorID uuid.UUID, target models.TargetRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.likes {
		if l.AuthorID == authorID && l.Target == target {
			delete(r.likes, id)
			return nil
		}
	}
	return apperrors.ErrLikeNotFound
}

// ListByTargets returns all likes pointing at any of the given targets of one kind
func (r *LikeRepository) ListByTargets(ctx context.Context, kind models.TargetKind, ids []uuid.UUID) ([]models.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	matched := make([]models.Like, 0)
	for _, l := range r.likes {
		if l.Target.Kind != kind {
			continue
		}
		if _, ok := wanted[l.Target.ID]; ok {
			matched = append(matched, l)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID.String() < matched[j].ID.String()
	})
	return matched, nil
}

// DeleteByTarget removes every like attached to the target
func (r *LikeRepository) DeleteByTarget(ctx context.Context, target models.TargetRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.likes {
		if l.Target == target {
			delete(r.likes, id)
		}
	}
	return nil
}

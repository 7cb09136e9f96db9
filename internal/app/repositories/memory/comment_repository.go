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

// CommentRepository is an in-memory implementation of repositories.CommentRepository
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]models.Comment
}

// NewCommentRepository creates a new in-memory comment repository
func NewCommentRepository() repositories.CommentRepository {
	return &CommentRepository{
		comments: make(map[uuid.UUID]models.Comment),
	}
}

// Create adds a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	if comment.Status == "" {
		comment.Status = models.StatusPending
	}

	r.comments[comment.ID] = *comment
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrCommentNotFound
	}
	return &comment, nil
}

// Delete removes a comment by ID
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return apperrors.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// List returns all comments for moderation, newest first
func (r *CommentRepository) List(ctx context.Context, page, size int) ([]models.Comment, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	total := int64(len(all))
	start, end := sliceBounds(page, size, len(all))
	return all[start:end], total, nil
}

// Review decides a pending comment. Already-decided comments are not re-reviewable.
func (r *CommentRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrCommentNotFound
	}
	if comment.Status != models.StatusPending {
		return nil, apperrors.ErrInvalidStateTransition
	}
	comment.Status = status
	comment.ReviewerID = &reviewerID
	r.comments[id] = comment
	return &comment, nil
}

// ListByTarget returns the comments on one target, oldest first
func (r *CommentRepository) ListByTarget(ctx context.Context, target models.TargetRef, status *models.ContentStatus) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.Target != target {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	return matched, nil
}

// DeleteByTarget removes every comment attached to the target
func (r *CommentRepository) DeleteByTarget(ctx context.Context, target models.TargetRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.comments {
		if c.Target == target {
			delete(r.comments, id)
		}
	}
	return nil
}

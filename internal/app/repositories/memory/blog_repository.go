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

// BlogRepository is an in-memory implementation of repositories.BlogRepository
type BlogRepository struct {
	mu    sync.RWMutex
	blogs map[uuid.UUID]models.Blog
}

// NewBlogRepository creates a new in-memory blog repository
func NewBlogRepository() repositories.BlogRepository {
	return &BlogRepository{
		blogs: make(map[uuid.UUID]models.Blog),
	}
}

// Create adds a new blog
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now
	if blog.Status == "" {
		blog.Status = models.StatusPending
	}

	r.blogs[blog.ID] = *blog
	return nil
}

// GetByID retrieves a blog by ID
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, apperrors.ErrBlogNotFound
	}
	return &blog, nil
}

// Update replaces the stored blog
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[blog.ID]; !ok {
		return apperrors.ErrBlogNotFound
	}
	blog.UpdatedAt = time.Now()
	r.blogs[blog.ID] = *blog
	return nil
}

// Delete removes a blog by ID
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return apperrors.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}

// List returns blogs matching the filter, newest first
func (r *BlogRepository) List(ctx context.Context, filter repositories.ContentFilter) ([]models.Blog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.AuthorID != nil && b.AuthorID != *filter.AuthorID {
			continue
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := int64(len(matched))
	start, end := sliceBounds(filter.Page, filter.PageSize, len(matched))
	return matched[start:end], total, nil
}

// Review decides a pending blog. Already-decided blogs are not re-reviewable.
func (r *BlogRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, apperrors.ErrBlogNotFound
	}
	if blog.Status != models.StatusPending {
		return nil, apperrors.ErrInvalidStateTransition
	}
	blog.Status = status
	blog.ReviewerID = &reviewerID
	blog.UpdatedAt = time.Now()
	r.blogs[id] = blog
	return &blog, nil
}

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

// ProjectRepository is an in-memory implementation of repositories.ProjectRepository
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]models.Project
}

// NewProjectRepository creates a new in-memory project repository
func NewProjectRepository() repositories.ProjectRepository {
	return &ProjectRepository{
		projects: make(map[uuid.UUID]models.Project),
	}
}

// Create adds a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now
	if project.Status == "" {
		project.Status = models.StatusPending
	}

	r.projects[project.ID] = *project
	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	return &project, nil
}

// Update replaces the stored project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; !ok {
		return apperrors.ErrProjectNotFound
	}
	project.UpdatedAt = time.Now()
	r.projects[project.ID] = *project
	return nil
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return apperrors.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

// List returns projects matching the filter, newest first
func (r *ProjectRepository) List(ctx context.Context, filter repositories.ContentFilter) ([]models.Project, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
			continue
		}
		matched = append(matched, p)
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

// Review decides a pending project. Already-decided projects are not re-reviewable.
func (r *ProjectRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	if project.Status != models.StatusPending {
		return nil, apperrors.ErrInvalidStateTransition
	}
	project.Status = status
	project.ReviewerID = &reviewerID
	project.UpdatedAt = time.Now()
	r.projects[id] = project
	return &project, nil
}

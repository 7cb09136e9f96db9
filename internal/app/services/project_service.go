package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/auth"
	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
)

// ProjectService defines the interface for project operations
type ProjectService interface {
	CreateProject(ctx context.Context, authorID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjectByID(ctx context.Context, id uuid.UUID, viewer *models.User) (*dto.ProjectResponse, error)
	GetApprovedProjects(ctx context.Context, page, size int) (*dto.ProjectListResponse, error)
	GetAllProjects(ctx context.Context, status *models.ContentStatus, page, size int) (*dto.ProjectListResponse, error)
	UpdateProject(ctx context.Context, caller *models.User, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, caller *models.User, id uuid.UUID) error
	ReviewProject(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.ProjectResponse, error)
}

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	stores    *repositories.Stores
	assembler *viewAssembler
}

// NewProjectService creates a new ProjectService
func NewProjectService(stores *repositories.Stores) ProjectService {
	return &projectServiceImpl{
		stores:    stores,
		assembler: newViewAssembler(stores),
	}
}

// CreateProject publishes a new project in PENDING state
func (s *projectServiceImpl) CreateProject(ctx context.Context, authorID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &models.Project{
		AuthorID:     authorID,
		Title:        req.Title,
		Description:  req.Description,
		SourceLink:   req.SourceLink,
		DeployedLink: req.DeployedLink,
		Tags:         req.Tags,
		TechStack:    req.TechStack,
		Status:       models.StatusPending,
	}
	if err := s.stores.Projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	return s.assemble(ctx, project, uuid.Nil)
}

// GetProjectByID returns the assembled project detail. Undecided or rejected
// projects are visible only to their author and admins.
func (s *projectServiceImpl) GetProjectByID(ctx context.Context, id uuid.UUID, viewer *models.User) (*dto.ProjectResponse, error) {
	project, err := s.stores.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.Status != models.StatusApproved && !canSeeUndecided(viewer, project.AuthorID) {
		return nil, apperrors.ErrProjectNotFound
	}

	viewerID := uuid.Nil
	if viewer != nil {
		viewerID = viewer.ID
	}
	return s.assemble(ctx, project, viewerID)
}

// GetApprovedProjects returns the public listing
func (s *projectServiceImpl) GetApprovedProjects(ctx context.Context, page, size int) (*dto.ProjectListResponse, error) {
	approved := models.StatusApproved
	return s.list(ctx, repositories.ContentFilter{Status: &approved, Page: page, PageSize: size})
}

// GetAllProjects returns the moderation listing, optionally filtered by status
func (s *projectServiceImpl) GetAllProjects(ctx context.Context, status *models.ContentStatus, page, size int) (*dto.ProjectListResponse, error) {
	return s.list(ctx, repositories.ContentFilter{Status: status, Page: page, PageSize: size})
}

func (s *projectServiceImpl) list(ctx context.Context, filter repositories.ContentFilter) (*dto.ProjectListResponse, error) {
	projects, total, err := s.stores.Projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(projects)*2)
	for _, p := range projects {
		ids = append(ids, p.AuthorID)
		if p.ReviewerID != nil {
			ids = append(ids, *p.ReviewerID)
		}
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, buildProjectResponse(&projects[i], users, nil))
	}
	return &dto.ProjectListResponse{
		Projects:   responses,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateProject edits a project. Only the author edits.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, caller *models.User, id uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.stores.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModifyContent(caller.ID, project.AuthorID) {
		return nil, apperrors.NewForbiddenError("only the author can edit this project")
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.SourceLink != "" {
		project.SourceLink = req.SourceLink
	}
	if req.DeployedLink != "" {
		project.DeployedLink = req.DeployedLink
	}
	if req.Tags != nil {
		project.Tags = req.Tags
	}
	if req.TechStack != nil {
		project.TechStack = req.TechStack
	}
	if err := s.stores.Projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	return s.assemble(ctx, project, caller.ID)
}

// DeleteProject removes a project and everything attached to it
func (s *projectServiceImpl) DeleteProject(ctx context.Context, caller *models.User, id uuid.UUID) error {
	project, err := s.stores.Projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanDeleteContent(caller.ID, project.AuthorID, caller.RoleType) {
		return apperrors.NewForbiddenError("only the author or an admin can delete this project")
	}

	if err := s.stores.Projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	return detachReactions(ctx, s.stores, project.Target())
}

// ReviewProject decides a pending project
func (s *projectServiceImpl) ReviewProject(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.ProjectResponse, error) {
	if !auth.CanReview(caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only admins can review projects")
	}
	if !status.Decided() {
		return nil, apperrors.NewValidationError("review status must be APPROVED or REJECTED")
	}

	project, err := s.stores.Projects.Review(ctx, id, status, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, project, caller.ID)
}

func (s *projectServiceImpl) assemble(ctx context.Context, project *models.Project, viewerID uuid.UUID) (*dto.ProjectResponse, error) {
	ids := []uuid.UUID{project.AuthorID}
	if project.ReviewerID != nil {
		ids = append(ids, *project.ReviewerID)
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}
	reactions, err := s.assembler.reactions(ctx, models.TargetProject, []uuid.UUID{project.ID}, viewerID)
	if err != nil {
		return nil, err
	}
	resp := buildProjectResponse(project, users, reactions)
	return &resp, nil
}

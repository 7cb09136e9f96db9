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

// BlogService defines the interface for blog operations
type BlogService interface {
	CreateBlog(ctx context.Context, authorID uuid.UUID, req *dto.CreateBlogRequest) (*dto.BlogResponse, error)
	GetBlogByID(ctx context.Context, id uuid.UUID, viewer *models.User) (*dto.BlogResponse, error)
	GetApprovedBlogs(ctx context.Context, page, size int) (*dto.BlogListResponse, error)
	GetAllBlogs(ctx context.Context, status *models.ContentStatus, page, size int) (*dto.BlogListResponse, error)
	UpdateBlog(ctx context.Context, caller *models.User, id uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	DeleteBlog(ctx context.Context, caller *models.User, id uuid.UUID) error
	ReviewBlog(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.BlogResponse, error)
}

// blogServiceImpl implements BlogService
type blogServiceImpl struct {
	stores    *repositories.Stores
	assembler *viewAssembler
}

// NewBlogService creates a new BlogService
func NewBlogService(stores *repositories.Stores) BlogService {
	return &blogServiceImpl{
		stores:    stores,
		assembler: newViewAssembler(stores),
	}
}

// CreateBlog publishes a new blog in PENDING state
func (s *blogServiceImpl) CreateBlog(ctx context.Context, authorID uuid.UUID, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	blog := &models.Blog{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Status:   models.StatusPending,
	}
	if err := s.stores.Blogs.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("error creating blog: %w", err)
	}
	return s.assemble(ctx, blog, uuid.Nil)
}

// GetBlogByID returns the assembled blog detail. Undecided or rejected blogs
// are visible only to their author and admins.
func (s *blogServiceImpl) GetBlogByID(ctx context.Context, id uuid.UUID, viewer *models.User) (*dto.BlogResponse, error) {
	blog, err := s.stores.Blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog.Status != models.StatusApproved && !canSeeUndecided(viewer, blog.AuthorID) {
		return nil, apperrors.ErrBlogNotFound
	}

	viewerID := uuid.Nil
	if viewer != nil {
		viewerID = viewer.ID
	}
	return s.assemble(ctx, blog, viewerID)
}

// GetApprovedBlogs returns the public listing: approved blogs with author and
// reviewer projections, no reaction enrichment.
func (s *blogServiceImpl) GetApprovedBlogs(ctx context.Context, page, size int) (*dto.BlogListResponse, error) {
	approved := models.StatusApproved
	return s.list(ctx, repositories.ContentFilter{Status: &approved, Page: page, PageSize: size})
}

// GetAllBlogs returns the moderation listing, optionally filtered by status
func (s *blogServiceImpl) GetAllBlogs(ctx context.Context, status *models.ContentStatus, page, size int) (*dto.BlogListResponse, error) {
	return s.list(ctx, repositories.ContentFilter{Status: status, Page: page, PageSize: size})
}

func (s *blogServiceImpl) list(ctx context.Context, filter repositories.ContentFilter) (*dto.BlogListResponse, error) {
	blogs, total, err := s.stores.Blogs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(blogs)*2)
	for _, b := range blogs {
		ids = append(ids, b.AuthorID)
		if b.ReviewerID != nil {
			ids = append(ids, *b.ReviewerID)
		}
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, buildBlogResponse(&blogs[i], users, nil))
	}
	return &dto.BlogListResponse{
		Blogs:      responses,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateBlog edits a blog. Only the author edits; the moderation status is
// left untouched.
func (s *blogServiceImpl) UpdateBlog(ctx context.Context, caller *models.User, id uuid.UUID, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	blog, err := s.stores.Blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModifyContent(caller.ID, blog.AuthorID) {
		return nil, apperrors.NewForbiddenError("only the author can edit this blog")
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if err := s.stores.Blogs.Update(ctx, blog); err != nil {
		return nil, fmt.Errorf("error updating blog: %w", err)
	}
	return s.assemble(ctx, blog, caller.ID)
}

// DeleteBlog removes a blog and everything attached to it
func (s *blogServiceImpl) DeleteBlog(ctx context.Context, caller *models.User, id uuid.UUID) error {
	blog, err := s.stores.Blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanDeleteContent(caller.ID, blog.AuthorID, caller.RoleType) {
		return apperrors.NewForbiddenError("only the author or an admin can delete this blog")
	}

	if err := s.stores.Blogs.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}
	return detachReactions(ctx, s.stores, blog.Target())
}

// ReviewBlog decides a pending blog
func (s *blogServiceImpl) ReviewBlog(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.BlogResponse, error) {
	if !auth.CanReview(caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only admins can review blogs")
	}
	if !status.Decided() {
		return nil, apperrors.NewValidationError("review status must be APPROVED or REJECTED")
	}

	blog, err := s.stores.Blogs.Review(ctx, id, status, caller.ID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, blog, caller.ID)
}

func (s *blogServiceImpl) assemble(ctx context.Context, blog *models.Blog, viewerID uuid.UUID) (*dto.BlogResponse, error) {
	ids := []uuid.UUID{blog.AuthorID}
	if blog.ReviewerID != nil {
		ids = append(ids, *blog.ReviewerID)
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}
	reactions, err := s.assembler.reactions(ctx, models.TargetBlog, []uuid.UUID{blog.ID}, viewerID)
	if err != nil {
		return nil, err
	}
	resp := buildBlogResponse(blog, users, reactions)
	return &resp, nil
}

// canSeeUndecided reports whether the viewer may read content that is not yet
// (or never will be) approved.
func canSeeUndecided(viewer *models.User, authorID uuid.UUID) bool {
	if viewer == nil {
		return false
	}
	return viewer.ID == authorID || viewer.IsAdmin()
}

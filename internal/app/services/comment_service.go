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

// CommentService defines the interface for comment operations
type CommentService interface {
	CreateComment(ctx context.Context, authorID uuid.UUID, kind models.TargetKind, targetID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, caller *models.User, id uuid.UUID) error
	GetAllComments(ctx context.Context, page, size int) (*dto.CommentListResponse, error)
	ReviewComment(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.CommentResponse, error)
}

// commentServiceImpl implements CommentService
type commentServiceImpl struct {
	stores    *repositories.Stores
	assembler *viewAssembler
}

// NewCommentService creates a new CommentService
func NewCommentService(stores *repositories.Stores) CommentService {
	return &commentServiceImpl{
		stores:    stores,
		assembler: newViewAssembler(stores),
	}
}

// CreateComment attaches a PENDING comment to an existing content item.
// Comments on comments are rejected at the kind level.
func (s *commentServiceImpl) CreateComment(ctx context.Context, authorID uuid.UUID, kind models.TargetKind, targetID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	target, ok := models.CommentTarget(kind, targetID)
	if !ok {
		return nil, apperrors.NewValidationError("comments can target blogs, projects and events only")
	}
	if err := resolveTarget(ctx, s.stores, target); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID: authorID,
		Content:  req.Content,
		Target:   target,
		Status:   models.StatusPending,
	}
	if err := s.stores.Comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	users, err := s.assembler.identities(ctx, []uuid.UUID{authorID})
	if err != nil {
		return nil, err
	}
	resp := buildCommentResponse(comment, users, nil)
	return &resp, nil
}

// DeleteComment removes a comment and its likes. Author or admin.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, caller *models.User, id uuid.UUID) error {
	comment, err := s.stores.Comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanDeleteComment(caller.ID, comment.AuthorID, caller.RoleType) {
		return apperrors.NewForbiddenError("only the author or an admin can delete this comment")
	}

	if err := s.stores.Comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if err := s.stores.Likes.DeleteByTarget(ctx, comment.LikeTarget()); err != nil {
		return fmt.Errorf("error deleting comment likes: %w", err)
	}
	return nil
}

// GetAllComments returns the moderation queue: every comment regardless of
// status, with author and reviewer projections and the target's title.
func (s *commentServiceImpl) GetAllComments(ctx context.Context, page, size int) (*dto.CommentListResponse, error) {
	comments, total, err := s.stores.Comments.List(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(comments)*2)
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
		if c.ReviewerID != nil {
			ids = append(ids, *c.ReviewerID)
		}
	}
	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Target titles are memoized per target so a busy thread costs one lookup.
	titles := make(map[models.TargetRef]string)
	responses := make([]dto.CommentAdminResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		title, ok := titles[c.Target]
		if !ok {
			title = s.targetTitle(ctx, c.Target)
			titles[c.Target] = title
		}
		responses = append(responses, dto.CommentAdminResponse{
			CommentResponse: buildCommentResponse(c, users, nil),
			Reviewer:        summaryForPtr(users, c.ReviewerID),
			TargetKind:      string(c.Target.Kind),
			TargetID:        c.Target.ID.String(),
			TargetTitle:     title,
		})
	}
	return &dto.CommentListResponse{
		Comments:   responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// ReviewComment decides a pending comment
func (s *commentServiceImpl) ReviewComment(ctx context.Context, caller *models.User, id uuid.UUID, status models.ContentStatus) (*dto.CommentResponse, error) {
	if !auth.CanReview(caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only admins can review comments")
	}
	if !status.Decided() {
		return nil, apperrors.NewValidationError("review status must be APPROVED or REJECTED")
	}

	comment, err := s.stores.Comments.Review(ctx, id, status, caller.ID)
	if err != nil {
		return nil, err
	}

	users, err := s.assembler.identities(ctx, []uuid.UUID{comment.AuthorID})
	if err != nil {
		return nil, err
	}
	resp := buildCommentResponse(comment, users, nil)
	return &resp, nil
}

// targetTitle resolves the title of a comment's target; a dangling target
// yields an empty title rather than failing the listing.
func (s *commentServiceImpl) targetTitle(ctx context.Context, target models.TargetRef) string {
	switch target.Kind {
	case models.TargetBlog:
		if blog, err := s.stores.Blogs.GetByID(ctx, target.ID); err == nil {
			return blog.Title
		}
	case models.TargetProject:
		if project, err := s.stores.Projects.GetByID(ctx, target.ID); err == nil {
			return project.Title
		}
	case models.TargetEvent:
		if event, err := s.stores.Events.GetByID(ctx, target.ID); err == nil {
			return event.Title
		}
	}
	return ""
}

package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/auth"
	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/filestorage"
	"github.com/asrivastava/codecampus/internal/pkg/helpers"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

const avatarDir = "avatars"

// UserService defines the interface for user and profile operations
type UserService interface {
	GetProfileByUsername(ctx context.Context, username string, viewer *models.User) (*dto.ProfileResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest, avatar *multipart.FileHeader) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context, caller *models.User, page, size int) (*dto.UserListResponse, error)
	ChangeRole(ctx context.Context, caller *models.User, userID uuid.UUID, role models.RoleType) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, caller *models.User, userID uuid.UUID) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	stores    *repositories.Stores
	storage   filestorage.FileStorage
	assembler *viewAssembler
}

// NewUserService creates a new UserService
func NewUserService(stores *repositories.Stores, storage filestorage.FileStorage) UserService {
	return &userServiceImpl{
		stores:    stores,
		storage:   storage,
		assembler: newViewAssembler(stores),
	}
}

// GetProfileByUsername assembles a public profile: the user's identity, their
// APPROVED blogs and projects (each with reaction enrichment and reviewer),
// and the events they participate in.
func (s *userServiceImpl) GetProfileByUsername(ctx context.Context, username string, viewer *models.User) (*dto.ProfileResponse, error) {
	user, err := s.stores.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	viewerID := uuid.Nil
	if viewer != nil {
		viewerID = viewer.ID
	}
	approved := models.StatusApproved
	filter := repositories.ContentFilter{Status: &approved, AuthorID: &user.ID}

	blogs, _, err := s.stores.Blogs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing profile blogs: %w", err)
	}
	projects, _, err := s.stores.Projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing profile projects: %w", err)
	}
	events, err := s.stores.Events.ListByParticipant(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing profile events: %w", err)
	}

	ids := []uuid.UUID{user.ID}
	blogIDs := make([]uuid.UUID, 0, len(blogs))
	for _, b := range blogs {
		blogIDs = append(blogIDs, b.ID)
		if b.ReviewerID != nil {
			ids = append(ids, *b.ReviewerID)
		}
	}
	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
		if p.ReviewerID != nil {
			ids = append(ids, *p.ReviewerID)
		}
	}
	eventIDs := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
		ids = append(ids, e.AuthorID)
		if e.ReviewerID != nil {
			ids = append(ids, *e.ReviewerID)
		}
		if e.WinnerID != nil {
			ids = append(ids, *e.WinnerID)
		}
	}

	users, err := s.assembler.identities(ctx, ids)
	if err != nil {
		return nil, err
	}
	blogReactions, err := s.assembler.reactions(ctx, models.TargetBlog, blogIDs, viewerID)
	if err != nil {
		return nil, err
	}
	projectReactions, err := s.assembler.reactions(ctx, models.TargetProject, projectIDs, viewerID)
	if err != nil {
		return nil, err
	}
	eventReactions, err := s.assembler.reactions(ctx, models.TargetEvent, eventIDs, viewerID)
	if err != nil {
		return nil, err
	}

	blogResponses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		blogResponses = append(blogResponses, buildBlogResponse(&blogs[i], users, blogReactions))
	}
	projectResponses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		projectResponses = append(projectResponses, buildProjectResponse(&projects[i], users, projectReactions))
	}
	eventResponses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		eventResponses = append(eventResponses, buildEventResponse(&events[i], users, eventReactions))
	}

	return &dto.ProfileResponse{
		User:     buildUserResponse(user),
		Blogs:    blogResponses,
		Projects: projectResponses,
		Events:   eventResponses,
	}, nil
}

// GetMe returns the caller's own account view
func (s *userServiceImpl) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.stores.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := buildUserResponse(user)
	return &resp, nil
}

// UpdateProfile edits the caller's profile fields and optionally replaces the
// avatar through the blob storage collaborator.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest, avatar *multipart.FileHeader) (*dto.UserResponse, error) {
	user, err := s.stores.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.SocialLinks != nil {
		user.SocialLinks = *req.SocialLinks
	}
	if avatar != nil {
		avatarURL, err := s.storage.SaveFileWithPath(avatar, avatarDir)
		if err != nil {
			return nil, apperrors.NewDependencyError("failed to store avatar", err)
		}
		if user.AvatarURL != "" {
			if err := s.storage.DeleteFile(user.AvatarURL); err != nil {
				logger.Warn().Err(err).Str("userId", userID.String()).Msg("Failed to delete replaced avatar")
			}
		}
		user.AvatarURL = avatarURL
	}

	if err := s.stores.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := buildUserResponse(user)
	return &resp, nil
}

// GetAllUsers returns the admin user listing
func (s *userServiceImpl) GetAllUsers(ctx context.Context, caller *models.User, page, size int) (*dto.UserListResponse, error) {
	if !auth.CanManageUsers(caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only admins can list users")
	}

	users, total, err := s.stores.Users.List(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, buildUserResponse(&users[i]))
	}
	return &dto.UserListResponse{
		Users:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// ChangeRole sets a user's role. Admins cannot demote themselves, so the
// system always keeps at least the acting admin.
func (s *userServiceImpl) ChangeRole(ctx context.Context, caller *models.User, userID uuid.UUID, role models.RoleType) (*dto.UserResponse, error) {
	if !auth.CanManageUsers(caller.RoleType) {
		return nil, apperrors.NewForbiddenError("only admins can change roles")
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role")
	}
	if caller.ID == userID && role != models.RoleAdmin {
		return nil, apperrors.NewValidationError("admins cannot demote themselves")
	}

	user, err := s.stores.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.RoleType = role
	if err := s.stores.Users.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("userId", userID.String()).Str("role", string(role)).Msg("User role changed")
	resp := buildUserResponse(user)
	return &resp, nil
}

// DeleteUser removes a user account
func (s *userServiceImpl) DeleteUser(ctx context.Context, caller *models.User, userID uuid.UUID) error {
	if !auth.CanManageUsers(caller.RoleType) {
		return apperrors.NewForbiddenError("only admins can delete users")
	}
	if caller.ID == userID {
		return apperrors.NewValidationError("admins cannot delete themselves")
	}
	return s.stores.Users.Delete(ctx, userID)
}

func buildUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		UserSummary: *dto.NewUserSummary(user),
		RegNumber:   user.RegNumber,
		Bio:         user.Bio,
		Skills:      user.Skills,
		SocialLinks: user.SocialLinks,
		CreatedAt:   formatTime(user.CreatedAt),
	}
}

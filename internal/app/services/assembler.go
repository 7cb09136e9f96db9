package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
)

// viewAssembler turns raw store rows into response DTOs. It batches: one
// likes query per target kind and one identity query per response, with the
// join done in memory. The likes snapshot is taken once, so every item in a
// response reflects the same instant.
type viewAssembler struct {
	users repositories.UserRepository
	likes repositories.LikeRepository
}

func newViewAssembler(stores *repositories.Stores) *viewAssembler {
	return &viewAssembler{
		users: stores.Users,
		likes: stores.Likes,
	}
}

// reactions builds the per-target reaction summaries for one kind of target.
// viewerID may be uuid.Nil for anonymous viewers; their ViewerHasLiked is
// always false.
func (a *viewAssembler) reactions(ctx context.Context, kind models.TargetKind, ids []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]*dto.ReactionSummary, error) {
	result := make(map[uuid.UUID]*dto.ReactionSummary, len(ids))
	for _, id := range ids {
		result[id] = &dto.ReactionSummary{}
	}
	if len(ids) == 0 {
		return result, nil
	}

	likes, err := a.likes.ListByTargets(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching reactions: %w", err)
	}
	for _, like := range likes {
		summary, ok := result[like.Target.ID]
		if !ok {
			continue
		}
		summary.LikeCount++
		if viewerID != uuid.Nil && like.AuthorID == viewerID {
			summary.ViewerHasLiked = true
		}
	}
	return result, nil
}

// identities batch-resolves users referenced by a response. Dangling IDs are
// tolerated: the corresponding summaries come back nil rather than failing
// the whole view.
func (a *viewAssembler) identities(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := a.users.ByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("error fetching identities: %w", err)
	}
	return users, nil
}

// summaryFor projects one resolved identity, nil when the ID is unknown.
func summaryFor(users map[uuid.UUID]models.User, id uuid.UUID) *dto.UserSummary {
	if u, ok := users[id]; ok {
		return dto.NewUserSummary(&u)
	}
	return nil
}

func summaryForPtr(users map[uuid.UUID]models.User, id *uuid.UUID) *dto.UserSummary {
	if id == nil {
		return nil
	}
	return summaryFor(users, *id)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// --- per-model response builders ---

func buildBlogResponse(blog *models.Blog, users map[uuid.UUID]models.User, reactions map[uuid.UUID]*dto.ReactionSummary) dto.BlogResponse {
	resp := dto.BlogResponse{
		ID:        blog.ID.String(),
		Title:     blog.Title,
		Content:   blog.Content,
		Tags:      blog.Tags,
		Status:    string(blog.Status),
		Author:    summaryFor(users, blog.AuthorID),
		Reviewer:  summaryForPtr(users, blog.ReviewerID),
		CreatedAt: formatTime(blog.CreatedAt),
	}
	if reactions != nil {
		resp.ReactionSummary = reactions[blog.ID]
	}
	return resp
}

func buildProjectResponse(project *models.Project, users map[uuid.UUID]models.User, reactions map[uuid.UUID]*dto.ReactionSummary) dto.ProjectResponse {
	resp := dto.ProjectResponse{
		ID:           project.ID.String(),
		Title:        project.Title,
		Description:  project.Description,
		SourceLink:   project.SourceLink,
		DeployedLink: project.DeployedLink,
		Tags:         project.Tags,
		TechStack:    project.TechStack,
		Status:       string(project.Status),
		Author:       summaryFor(users, project.AuthorID),
		Reviewer:     summaryForPtr(users, project.ReviewerID),
		CreatedAt:    formatTime(project.CreatedAt),
	}
	if reactions != nil {
		resp.ReactionSummary = reactions[project.ID]
	}
	return resp
}

func buildEventResponse(event *models.Event, users map[uuid.UUID]models.User, reactions map[uuid.UUID]*dto.ReactionSummary) dto.EventResponse {
	resp := dto.EventResponse{
		ID:              event.ID.String(),
		Title:           event.Title,
		Description:     event.Description,
		ImageURL:        event.ImageURL,
		Date:            formatTime(event.Date),
		DurationMinutes: event.DurationMinutes,
		Venue:           event.Venue,
		EventType:       string(event.EventType),
		Tags:            event.Tags,
		Status:          string(event.Status),
		Author:          summaryFor(users, event.AuthorID),
		Reviewer:        summaryForPtr(users, event.ReviewerID),
		Winner:          summaryForPtr(users, event.WinnerID),
		CreatedAt:       formatTime(event.CreatedAt),
	}
	if reactions != nil {
		resp.ReactionSummary = reactions[event.ID]
	}
	return resp
}

func buildCommentResponse(comment *models.Comment, users map[uuid.UUID]models.User, reactions map[uuid.UUID]*dto.ReactionSummary) dto.CommentResponse {
	resp := dto.CommentResponse{
		ID:        comment.ID.String(),
		Content:   comment.Content,
		Status:    string(comment.Status),
		Author:    summaryFor(users, comment.AuthorID),
		CreatedAt: formatTime(comment.CreatedAt),
	}
	if reactions != nil {
		resp.ReactionSummary = reactions[comment.ID]
	}
	return resp
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/app/repositories/memory"
)

func newTestStores() *repositories.Stores {
	return memory.NewStores()
}

func seedUser(t *testing.T, stores *repositories.Stores, username string, role models.RoleType) *models.User {
	t.Helper()
	user := &models.User{
		RegNumber: "REG" + username,
		Username:  username,
		FullName:  "Test " + username,
		Email:     username + "@campus.test",
		Password:  "not-a-real-hash",
		RoleType:  role,
	}
	require.NoError(t, stores.Users.Create(context.Background(), user))
	return user
}

func seedBlog(t *testing.T, stores *repositories.Stores, authorID uuid.UUID, status models.ContentStatus) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		AuthorID: authorID,
		Title:    "Profiling Go allocations",
		Content:  "A walk through pprof heap profiles and what they reveal.",
		Status:   status,
	}
	require.NoError(t, stores.Blogs.Create(context.Background(), blog))
	return blog
}

func seedProject(t *testing.T, stores *repositories.Stores, authorID uuid.UUID, status models.ContentStatus) *models.Project {
	t.Helper()
	project := &models.Project{
		AuthorID:    authorID,
		Title:       "Campus mess menu bot",
		Description: "Telegram bot that scrapes the weekly mess menu.",
		SourceLink:  "https://github.com/example/mess-bot",
		Status:      status,
	}
	require.NoError(t, stores.Projects.Create(context.Background(), project))
	return project
}

func seedEvent(t *testing.T, stores *repositories.Stores, authorID uuid.UUID, status models.ContentStatus) *models.Event {
	t.Helper()
	event := &models.Event{
		AuthorID:    authorID,
		Title:       "Winter hackathon",
		Description: "24 hour build sprint in the main auditorium.",
		Date:        time.Now().Add(48 * time.Hour),
		Venue:       "Main auditorium",
		EventType:   models.EventHackathon,
		Status:      status,
	}
	require.NoError(t, stores.Events.Create(context.Background(), event))
	return event
}

func seedComment(t *testing.T, stores *repositories.Stores, authorID uuid.UUID, target models.TargetRef, status models.ContentStatus) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		AuthorID: authorID,
		Content:  "Great write-up!",
		Target:   target,
		Status:   status,
	}
	require.NoError(t, stores.Comments.Create(context.Background(), comment))
	return comment
}

func seedLike(t *testing.T, stores *repositories.Stores, authorID uuid.UUID, target models.TargetRef) *models.Like {
	t.Helper()
	like := &models.Like{
		AuthorID: authorID,
		Target:   target,
	}
	require.NoError(t, stores.Likes.Create(context.Background(), like))
	return like
}

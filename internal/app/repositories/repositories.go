// Package repositories defines the store interfaces the services are built
// against. Two implementations exist: postgres (pgx, production) and memory
// (tests and local development).
package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
)

// UserRepository handles user persistence and identity lookups.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, size int) ([]models.User, int64, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)

	// ByIDs batch-resolves identity references for view assembly: one call
	// per response, never one per item.
	ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error)
}

// ContentFilter narrows content listings.
type ContentFilter struct {
	Status   *models.ContentStatus
	AuthorID *uuid.UUID
	Page     int
	PageSize int
}

// BlogRepository handles blog persistence.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ContentFilter) ([]models.Blog, int64, error)

	// Review is a single-row conditional update: it decides the item only if
	// its current status is PENDING. Returns ErrBlogNotFound if the id does
	// not resolve and ErrInvalidStateTransition if the item is already decided.
	Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Blog, error)
}

// ProjectRepository handles project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ContentFilter) ([]models.Project, int64, error)
	Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Project, error)
}

// EventRepository handles event persistence, including the participant set.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ContentFilter) ([]models.Event, int64, error)
	Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Event, error)

	// AddParticipant is a set insert: adding an existing participant is a no-op.
	AddParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	RemoveParticipant(ctx context.Context, eventID, userID uuid.UUID) error
	SetWinner(ctx context.Context, eventID, winnerID uuid.UUID) error
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Event, error)
}

// CommentRepository handles comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, size int) ([]models.Comment, int64, error)
	Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Comment, error)

	// ListByTarget returns the comments attached to one target, optionally
	// filtered by status, oldest first.
	ListByTarget(ctx context.Context, target models.TargetRef, status *models.ContentStatus) ([]models.Comment, error)
	DeleteByTarget(ctx context.Context, target models.TargetRef) error
}

// LikeRepository handles like persistence.
type LikeRepository interface {
	// Create enforces the at-most-one-like-per-(author,target) invariant and
	// returns ErrAlreadyLiked on a duplicate.
	Create(ctx context.Context, like *models.Like) error

	// DeleteByAuthorTarget removes exactly the row matching (author, target)
	// and returns ErrLikeNotFound when no such row exists.
	DeleteByAuthorTarget(ctx context.Context, authorID uuid.UUID, target models.TargetRef) error

	// ListByTargets returns all likes pointing at any of the given targets of
	// one kind in a single query; the assembler joins them in memory.
	ListByTargets(ctx context.Context, kind models.TargetKind, ids []uuid.UUID) ([]models.Like, error)
	DeleteByTarget(ctx context.Context, target models.TargetRef) error
}

// Stores bundles all repositories for dependency wiring.
type Stores struct {
	Users    UserRepository
	Blogs    BlogRepository
	Projects ProjectRepository
	Events   EventRepository
	Comments CommentRepository
	Likes    LikeRepository
}

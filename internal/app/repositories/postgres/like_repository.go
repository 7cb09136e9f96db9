package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/dberrors"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

var likeColumns = []string{"id", "author_id", "target_kind", "target_id", "created_at"}

// LikeRepository handles like database operations. The
// likes_author_target_key unique index is the source of truth for the
// one-like-per-(author,target) rule.
type LikeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) repositories.LikeRepository {
	return &LikeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a like, rejecting duplicates per (author, target)
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	sql, args, err := r.sb.Insert("likes").
		Columns(likeColumns...).
		Values(like.ID, like.AuthorID, like.Target.Kind, like.Target.ID, like.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert like query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "likes_author_target_key") {
			return apperrors.ErrAlreadyLiked
		}
		logger.Error().Err(err).Msg("Error inserting like")
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// DeleteByAuthorTarget removes the single like matching (author, target)
func (r *LikeRepository) DeleteByAuthorTarget(ctx context.Context, authorID uuid.UUID, target models.TargetRef) error {
	sql, args, err := r.sb.Delete("likes").
		Where(squirrel.Eq{
			"author_id":   authorID,
			"target_kind": target.Kind,
			"target_id":   target.ID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete like query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting like")
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLikeNotFound
	}
	return nil
}

// ListByTargets returns all likes pointing at any of the given targets of one
// kind in a single query
func (r *LikeRepository) ListByTargets(ctx context.Context, kind models.TargetKind, ids []uuid.UUID) ([]models.Like, error) {
	if len(ids) == 0 {
		return []models.Like{}, nil
	}

	sql, args, err := r.sb.Select(likeColumns...).
		From("likes").
		Where(squirrel.Eq{"target_kind": kind, "target_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list likes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing likes by targets")
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer rows.Close()

	var likes []models.Like
	for rows.Next() {
		like, err := scanLike(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		likes = append(likes, *like)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like rows: %w", err)
	}
	return likes, nil
}

// DeleteByTarget removes every like attached to the target
func (r *LikeRepository) DeleteByTarget(ctx context.Context, target models.TargetRef) error {
	sql, args, err := r.sb.Delete("likes").
		Where(squirrel.Eq{"target_kind": target.Kind, "target_id": target.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete likes by target query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error deleting likes by target")
		return fmt.Errorf("failed to delete likes by target: %w", err)
	}
	return nil
}

func scanLike(row pgx.Row) (*models.Like, error) {
	var like models.Like
	err := row.Scan(&like.ID, &like.AuthorID, &like.Target.Kind, &like.Target.ID, &like.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &like, nil
}

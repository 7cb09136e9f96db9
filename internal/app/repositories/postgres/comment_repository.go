package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

var commentColumns = []string{
	"id", "author_id", "content", "target_kind", "target_id",
	"status", "reviewer_id", "created_at",
}

// CommentRepository handles comment database operations
type CommentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) repositories.CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	if comment.Status == "" {
		comment.Status = models.StatusPending
	}

	sql, args, err := r.sb.Insert("comments").
		Columns(commentColumns...).
		Values(
			comment.ID, comment.AuthorID, comment.Content,
			comment.Target.Kind, comment.Target.ID,
			comment.Status, comment.ReviewerID, comment.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert comment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting comment")
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	sql, args, err := r.sb.Select(commentColumns...).
		From("comments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get comment query: %w", err)
	}

	comment, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning comment row")
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment by ID
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("comments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete comment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting comment")
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// List returns all comments for moderation with pagination, newest first
func (r *CommentRepository) List(ctx context.Context, page, size int) ([]models.Comment, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("comments").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count comments query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting comments")
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}
	if total == 0 {
		return []models.Comment{}, 0, nil
	}

	builder := r.sb.Select(commentColumns...).
		From("comments").
		OrderBy("created_at DESC", "id ASC")
	builder = applyPaging(builder, page, size)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing comments")
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments, err := collectComments(rows)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Review decides a pending comment in a single conditional update.
func (r *CommentRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Comment, error) {
	sql, args, err := r.sb.Update("comments").
		Set("status", status).
		Set("reviewer_id", reviewerID).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(commentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review comment query: %w", err)
	}

	comment, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidStateTransition
		}
		logger.Error().Err(err).Msg("Error reviewing comment")
		return nil, fmt.Errorf("failed to review comment: %w", err)
	}
	return comment, nil
}

// ListByTarget returns the comments on one target, oldest first
func (r *CommentRepository) ListByTarget(ctx context.Context, target models.TargetRef, status *models.ContentStatus) ([]models.Comment, error) {
	where := squirrel.And{
		squirrel.Eq{"target_kind": target.Kind, "target_id": target.ID},
	}
	if status != nil {
		where = append(where, squirrel.Eq{"status": *status})
	}

	sql, args, err := r.sb.Select(commentColumns...).
		From("comments").
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments by target query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing comments by target")
		return nil, fmt.Errorf("failed to list comments by target: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

// DeleteByTarget removes every comment attached to the target
func (r *CommentRepository) DeleteByTarget(ctx context.Context, target models.TargetRef) error {
	sql, args, err := r.sb.Delete("comments").
		Where(squirrel.Eq{"target_kind": target.Kind, "target_id": target.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete comments by target query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error deleting comments by target")
		return fmt.Errorf("failed to delete comments by target: %w", err)
	}
	return nil
}

func collectComments(rows pgx.Rows) ([]models.Comment, error) {
	var comments []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID, &comment.AuthorID, &comment.Content,
		&comment.Target.Kind, &comment.Target.ID,
		&comment.Status, &comment.ReviewerID, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

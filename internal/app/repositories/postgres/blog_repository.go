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

var blogColumns = []string{
	"id", "author_id", "title", "content", "tags",
	"status", "reviewer_id", "created_at", "updated_at",
}

// BlogRepository handles blog database operations
type BlogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *pgxpool.Pool) repositories.BlogRepository {
	return &BlogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new blog
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now
	if blog.Status == "" {
		blog.Status = models.StatusPending
	}

	sql, args, err := r.sb.Insert("blogs").
		Columns(blogColumns...).
		Values(
			blog.ID, blog.AuthorID, blog.Title, blog.Content, blog.Tags,
			blog.Status, blog.ReviewerID, blog.CreatedAt, blog.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert blog query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting blog")
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

// GetByID retrieves a blog by ID
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	sql, args, err := r.sb.Select(blogColumns...).
		From("blogs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get blog query: %w", err)
	}

	blog, err := scanBlog(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBlogNotFound
		}
		logger.Error().Err(err).Msg("Error scanning blog row")
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

// Update replaces the blog's mutable fields
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	blog.UpdatedAt = time.Now()

	sql, args, err := r.sb.Update("blogs").
		Set("title", blog.Title).
		Set("content", blog.Content).
		Set("tags", blog.Tags).
		Set("status", blog.Status).
		Set("reviewer_id", blog.ReviewerID).
		Set("updated_at", blog.UpdatedAt).
		Where(squirrel.Eq{"id": blog.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update blog query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error updating blog")
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// Delete removes a blog by ID
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("blogs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete blog query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting blog")
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// List returns blogs matching the filter with pagination, newest first
func (r *BlogRepository) List(ctx context.Context, filter repositories.ContentFilter) ([]models.Blog, int64, error) {
	where := contentWhere(filter)

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("blogs").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count blogs query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting blogs")
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	if total == 0 {
		return []models.Blog{}, 0, nil
	}

	builder := r.sb.Select(blogColumns...).
		From("blogs").
		Where(where).
		OrderBy("created_at DESC", "id ASC")
	builder = applyPaging(builder, filter.Page, filter.PageSize)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list blogs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing blogs")
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog row: %w", err)
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating blog rows: %w", err)
	}
	return blogs, total, nil
}

// Review decides a pending blog in a single conditional update. The status
// guard in the WHERE clause makes concurrent reviews race-safe: exactly one
// wins, the rest see the item already decided.
func (r *BlogRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Blog, error) {
	sql, args, err := r.sb.Update("blogs").
		Set("status", status).
		Set("reviewer_id", reviewerID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(blogColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review blog query: %w", err)
	}

	blog, err := scanBlog(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.reviewMiss(ctx, id)
		}
		logger.Error().Err(err).Msg("Error reviewing blog")
		return nil, fmt.Errorf("failed to review blog: %w", err)
	}
	return blog, nil
}

// reviewMiss disambiguates a zero-row review: missing row vs already decided.
func (r *BlogRepository) reviewMiss(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return apperrors.ErrInvalidStateTransition
}

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var blog models.Blog
	err := row.Scan(
		&blog.ID, &blog.AuthorID, &blog.Title, &blog.Content, &blog.Tags,
		&blog.Status, &blog.ReviewerID, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

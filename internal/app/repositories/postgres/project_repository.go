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

var projectColumns = []string{
	"id", "author_id", "title", "description", "source_link", "deployed_link",
	"tags", "tech_stack", "status", "reviewer_id", "created_at", "updated_at",
}

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) repositories.ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now
	if project.Status == "" {
		project.Status = models.StatusPending
	}

	sql, args, err := r.sb.Insert("projects").
		Columns(projectColumns...).
		Values(
			project.ID, project.AuthorID, project.Title, project.Description,
			project.SourceLink, project.DeployedLink, project.Tags, project.TechStack,
			project.Status, project.ReviewerID, project.CreatedAt, project.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert project query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting project")
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Msg("Error scanning project row")
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// Update replaces the project's mutable fields
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	sql, args, err := r.sb.Update("projects").
		Set("title", project.Title).
		Set("description", project.Description).
		Set("source_link", project.SourceLink).
		Set("deployed_link", project.DeployedLink).
		Set("tags", project.Tags).
		Set("tech_stack", project.TechStack).
		Set("status", project.Status).
		Set("reviewer_id", project.ReviewerID).
		Set("updated_at", project.UpdatedAt).
		Where(squirrel.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error updating project")
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("projects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete project query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting project")
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// List returns projects matching the filter with pagination, newest first
func (r *ProjectRepository) List(ctx context.Context, filter repositories.ContentFilter) ([]models.Project, int64, error) {
	where := contentWhere(filter)

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("projects").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count projects query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting projects")
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}
	if total == 0 {
		return []models.Project{}, 0, nil
	}

	builder := r.sb.Select(projectColumns...).
		From("projects").
		Where(where).
		OrderBy("created_at DESC", "id ASC")
	builder = applyPaging(builder, filter.Page, filter.PageSize)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing projects")
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, total, nil
}

// Review decides a pending project in a single conditional update.
func (r *ProjectRepository) Review(ctx context.Context, id uuid.UUID, status models.ContentStatus, reviewerID uuid.UUID) (*models.Project, error) {
	sql, args, err := r.sb.Update("projects").
		Set("status", status).
		Set("reviewer_id", reviewerID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review project query: %w", err)
	}

	project, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidStateTransition
		}
		logger.Error().Err(err).Msg("Error reviewing project")
		return nil, fmt.Errorf("failed to review project: %w", err)
	}
	return project, nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID, &project.AuthorID, &project.Title, &project.Description,
		&project.SourceLink, &project.DeployedLink, &project.Tags, &project.TechStack,
		&project.Status, &project.ReviewerID, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

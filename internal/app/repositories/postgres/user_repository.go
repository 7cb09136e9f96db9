package postgres

import (
	"context"
	"encoding/json"
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
	"github.com/asrivastava/codecampus/internal/pkg/dberrors"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

var userColumns = []string{
	"id", "reg_number", "username", "full_name", "email", "password",
	"bio", "avatar_url", "role_type", "skills", "social_links",
	"refresh_token", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) repositories.UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	links, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return fmt.Errorf("failed to marshal social links: %w", err)
	}

	sql, args, err := r.sb.Insert("users").
		Columns(userColumns...).
		Values(
			user.ID, user.RegNumber, user.Username, user.FullName, user.Email,
			user.Password, user.Bio, user.AvatarURL, user.RoleType, user.Skills,
			links, user.RefreshToken, user.CreatedAt, user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return apperrors.ErrUsernameExists
		case dberrors.IsDuplicateConstraintError(err, "users_reg_number_key"):
			return apperrors.ErrRegNumberExists
		}
		logger.Error().Err(err).Msg("Error inserting user")
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// GetByRefreshToken resolves a user from a non-empty refresh token
func (r *UserRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrUserNotFound
	}
	return r.getOne(ctx, squirrel.Eq{"refresh_token": token})
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Update replaces the user's mutable fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	links, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return fmt.Errorf("failed to marshal social links: %w", err)
	}

	sql, args, err := r.sb.Update("users").
		Set("username", user.Username).
		Set("full_name", user.FullName).
		Set("email", user.Email).
		Set("password", user.Password).
		Set("bio", user.Bio).
		Set("avatar_url", user.AvatarURL).
		Set("role_type", user.RoleType).
		Set("skills", user.Skills).
		Set("social_links", links).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return apperrors.ErrUsernameExists
		}
		logger.Error().Err(err).Msg("Error updating user")
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting user")
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// List returns users ordered by creation time, newest first
func (r *UserRepository) List(ctx context.Context, page, size int) ([]models.User, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting users")
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if total == 0 {
		return []models.User{}, 0, nil
	}

	builder := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC", "id ASC")
	builder = applyPaging(builder, page, size)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, total, nil
}

// SetRefreshToken stores the user's current refresh token
func (r *UserRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	sql, args, err := r.sb.Update("users").
		Set("refresh_token", token).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set refresh token query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error setting refresh token")
		return fmt.Errorf("failed to set refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ByIDs batch-resolves users in a single query. Unknown IDs are absent from the map.
func (r *UserRepository) ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	result := make(map[uuid.UUID]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build batch users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error batch-fetching users")
		return nil, fmt.Errorf("failed to batch-fetch users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result[user.ID] = *user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return result, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var links []byte
	err := row.Scan(
		&user.ID, &user.RegNumber, &user.Username, &user.FullName, &user.Email,
		&user.Password, &user.Bio, &user.AvatarURL, &user.RoleType, &user.Skills,
		&links, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &user.SocialLinks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal social links: %w", err)
		}
	}
	return &user, nil
}

// applyPaging converts 1-based paging to LIMIT/OFFSET; size <= 0 means no paging.
func applyPaging(builder squirrel.SelectBuilder, page, size int) squirrel.SelectBuilder {
	if size <= 0 {
		return builder
	}
	if page < 1 {
		page = 1
	}
	return builder.Limit(uint64(size)).Offset(uint64((page - 1) * size))
}

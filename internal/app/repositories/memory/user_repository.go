package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
)

// UserRepository is an in-memory implementation of repositories.UserRepository
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]models.User),
	}
}

// Create adds a new user, enforcing email/username/regNumber uniqueness
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		switch {
		case u.Email == user.Email:
			return apperrors.ErrEmailAlreadyExists
		case u.Username == user.Username:
			return apperrors.ErrUsernameExists
		case u.RegNumber == user.RegNumber:
			return apperrors.ErrRegNumberExists
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Update replaces the stored user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// List returns users ordered by creation time, newest first
func (r *UserRepository) List(ctx context.Context, page, size int) ([]models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	total := int64(len(all))
	start, end := sliceBounds(page, size, len(all))
	return all[start:end], total, nil
}

// SetRefreshToken stores the user's current refresh token
func (r *UserRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.RefreshToken = token
	r.users[id] = user
	return nil
}

// GetByRefreshToken resolves a user from a non-empty refresh token
func (r *UserRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if token == "" {
		return nil, apperrors.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.RefreshToken == token {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// ByIDs batch-resolves users; unknown IDs are silently absent from the map
func (r *UserRepository) ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[uuid.UUID]models.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

// sliceBounds converts 1-based paging to slice indices; size <= 0 means all.
func sliceBounds(page, size, total int) (int, int) {
	if size <= 0 {
		return 0, total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}

package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/hotel-booking/internal/persistence"
)

// UserRepository implements persistence.UserRepository using SQLite.
type UserRepository struct {
	pool *ConnectionPool
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(pool *ConnectionPool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateUser inserts a new user.
func (r *UserRepository) CreateUser(ctx context.Context, user persistence.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.pool.DB().ExecContext(ctx, query,
		user.ID,
		normalizeUsername(user.Username),
		user.PasswordHash,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// GetUser retrieves a user by ID.
func (r *UserRepository) GetUser(ctx context.Context, id string) (persistence.User, error) {
	if id == "" {
		return persistence.User{}, persistence.ErrNotFound
	}

	return r.getUserWhere(ctx, "id = ?", id)
}

// GetUserByUsername retrieves a user by username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (persistence.User, error) {
	if username == "" {
		return persistence.User{}, persistence.ErrNotFound
	}

	return r.getUserWhere(ctx, "username = ?", normalizeUsername(username))
}

func (r *UserRepository) getUserWhere(ctx context.Context, condition string, arg any) (persistence.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE ` + condition

	var (
		user         persistence.User
		createdAtStr string
	)
	err := r.pool.DB().QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&createdAtStr,
	)
	if err != nil {
		return persistence.User{}, mapError(err)
	}

	if user.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return user, nil
}

// normalizeUsername lowercases usernames so uniqueness and lookup are
// case-insensitive.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/hotel-booking/internal/persistence"
)

// UserDirectory captures the persistence operations needed by the service.
type UserDirectory interface {
	CreateUser(ctx context.Context, user User, passwordHash string) error
	GetUserByUsername(ctx context.Context, username string) (User, string, error)
}

// UserService manages staff account registration and authentication.
type UserService struct {
	users          UserDirectory
	passwordParams PasswordParams
	idGenerator    func() string
	now            func() time.Time
	logger         *slog.Logger
}

// NewUserService constructs a user service with the provided dependencies.
func NewUserService(users UserDirectory, idGenerator func() string, now func() time.Time) *UserService {
	return NewUserServiceWithLogger(users, idGenerator, now, nil)
}

// NewUserServiceWithLogger constructs a user service with a specified logger.
func NewUserServiceWithLogger(users UserDirectory, idGenerator func() string, now func() time.Time, logger *slog.Logger) *UserService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &UserService{
		users:          users,
		passwordParams: DefaultPasswordParams,
		idGenerator:    idGenerator,
		now:            now,
		logger:         defaultLogger(logger),
	}
}

func (s *UserService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "UserService", operation, attrs...)
}

// Register validates credentials, hashes the password, and persists a
// new account. Plaintext passwords never reach the repository.
func (s *UserService) Register(ctx context.Context, username, password string) (user User, err error) {
	if s == nil {
		err = fmt.Errorf("UserService is nil")
		return
	}
	if s.users == nil {
		err = fmt.Errorf("user directory not configured")
		return
	}

	logger := s.loggerWith(ctx, "Register", "username", username)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to register user", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("user_id", user.ID).InfoContext(ctx, "user registered")
	}()

	username = strings.TrimSpace(username)
	vErr := &ValidationError{}
	if username == "" {
		vErr.add("username", "username is required")
	}
	if len(password) < 8 {
		vErr.add("password", "password must be at least 8 characters")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	hash, err := HashPassword(password, s.passwordParams)
	if err != nil {
		return
	}

	user = User{
		ID:        s.idGenerator(),
		Username:  username,
		CreatedAt: s.now().UTC(),
	}

	if err = s.users.CreateUser(ctx, user, hash); err != nil {
		err = mapUserRepoError(err)
		return
	}

	return
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both report ErrInvalidCredentials so callers cannot
// distinguish them.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (user User, err error) {
	if s == nil {
		err = fmt.Errorf("UserService is nil")
		return
	}
	if s.users == nil {
		err = fmt.Errorf("user directory not configured")
		return
	}

	logger := s.loggerWith(ctx, "Authenticate", "username", username)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "authentication failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("user_id", user.ID).InfoContext(ctx, "user authenticated")
	}()

	found, hash, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrInvalidCredentials
			return
		}
		err = mapUserRepoError(err)
		return
	}

	if err = VerifyPassword(hash, password); err != nil {
		return
	}

	user = found
	return
}

func mapUserRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistence.ErrDuplicate):
		return ErrAlreadyExists
	default:
		return err
	}
}

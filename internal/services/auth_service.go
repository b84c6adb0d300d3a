package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/calebmorton/hireboard/internal/models"
	pkgauth "github.com/calebmorton/hireboard/pkg/auth"
	pkglogger "github.com/calebmorton/hireboard/pkg/logger"
)

// UserRepository defines the account storage operations the services need
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, name *string, profileCompleted *bool) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
	RecordFailedAttempt(ctx context.Context, id string, maxAttempts int, lockDuration time.Duration) (*models.User, error)
	RecordSuccessfulLogin(ctx context.Context, id string) (*models.User, error)
}

// TokenIssuer mints signed bearer tokens for authenticated accounts
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration, login and credential management
type AuthService struct {
	users        UserRepository
	tokens       TokenIssuer
	logger       *slog.Logger
	maxAttempts  int
	lockDuration time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserRepository, tokens TokenIssuer, logger *slog.Logger, maxAttempts int, lockDuration time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		logger:       logger,
		maxAttempts:  maxAttempts,
		lockDuration: lockDuration,
	}
}

// UserResponse represents a user in the HTTP response. It never carries the
// password hash or the lockout bookkeeping.
type UserResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	ProfileCompleted bool   `json:"profile_completed"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// AuthResponse represents the response from auth operations
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserModelToResponse converts a stored account into its HTTP shape.
func UserModelToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		ProfileCompleted: user.ProfileCompleted,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        user.UpdatedAt.Format(time.RFC3339),
	}
}

// Register creates a new account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, email, password, name, role string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrBadRequest)
	}

	if err := pkgauth.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrWeakPassword, err.Error())
	}

	if role == "" {
		role = models.RoleCandidate
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role %q", models.ErrBadRequest, role)
	}

	passwordHash, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(name),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			s.logger.Info("registration rejected: email already in use",
				slog.String("email", pkglogger.SanitizedEmail(email)))
			return nil, models.ErrDuplicateEmail
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID), slog.String("role", user.Role))

	return &AuthResponse{
		Token: token,
		User:  UserModelToResponse(user),
	}, nil
}

// Login authenticates a user and returns a token. A missing account and a
// wrong password produce the same error so callers cannot probe for emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("login failed: invalid credentials")
			return nil, models.ErrInvalidCredentials
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	// A lock is never cleared proactively; it expires by comparison here.
	if user.Locked(time.Now()) {
		s.logger.Info("login blocked: account locked", slog.String("user_id", user.ID))
		return nil, &models.AccountLockedError{Until: *user.LockedUntil}
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		updated, recordErr := s.users.RecordFailedAttempt(ctx, user.ID, s.maxAttempts, s.lockDuration)
		if recordErr != nil {
			s.logger.Error("failed to record failed attempt", slog.String("user_id", user.ID), slog.Any("error", recordErr))
		} else if updated.LockedUntil != nil {
			s.logger.Info("account locked after repeated failures", slog.String("user_id", user.ID))
		}
		s.logger.Info("login failed: invalid credentials")
		return nil, models.ErrInvalidCredentials
	}

	user, err = s.users.RecordSuccessfulLogin(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to record successful login", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID))

	return &AuthResponse{
		Token: token,
		User:  UserModelToResponse(user),
	}, nil
}

// ChangePassword verifies the current password and replaces it with a new
// hash under a fresh salt.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to get user", slog.String("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		s.logger.Info("password change rejected: wrong current password", slog.String("user_id", userID))
		return models.ErrInvalidCredentials
	}

	if err := pkgauth.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %s", models.ErrWeakPassword, err.Error())
	}

	passwordHash, err := pkgauth.HashPassword(newPassword)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		s.logger.Error("failed to update password hash", slog.String("user_id", userID), slog.Any("error", err))
		return models.ErrInternalServer
	}

	s.logger.Info("password changed", slog.String("user_id", userID))
	return nil
}

// CurrentUser returns the sanitized account for an authenticated caller.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user", slog.String("user_id", userID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return UserModelToResponse(user), nil
}

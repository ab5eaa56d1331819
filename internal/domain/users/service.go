// Package users handles registration and login against the Postgres
// credential store, issuing HS256 tokens on success.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/urbangis/server/internal/auth"
)

var (
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails, for unknown email
	// and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when a registration payload is incomplete.
	ErrMissingFields = errors.New("missing fields")

	// ErrNotFound is returned by repositories when an email lookup misses.
	ErrNotFound = errors.New("user not found")
)

// DefaultRole is assigned when registration does not name a role.
const DefaultRole = "user"

// User is a credential-store row. PasswordHash never leaves this package.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// Repository is implemented by internal/storage/postgres.
type Repository interface {
	// Create inserts a user, returning ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, name, email, passwordHash, role string) (User, error)

	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type Service struct {
	repo     Repository
	tokens   *auth.JWTManager
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewService(repo Repository, tokens *auth.JWTManager, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger.With().Str("component", "users").Logger(),
	}
}

// Register hashes the password, inserts the user, and issues a token. The
// role defaults to "user"; unknown role names are normalized rather than
// rejected.
func (s *Service) Register(ctx context.Context, input RegisterInput) (User, string, error) {
	if err := s.validate.Struct(input); err != nil {
		return User{}, "", ErrMissingFields
	}

	role := input.Role
	if role == "" {
		role = DefaultRole
	}
	role = string(auth.NormalizeRole(role))

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, input.Name, input.Email, hash, role)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, "", ErrEmailTaken
		}
		return User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Role, user.Email)
	if err != nil {
		return User{}, "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return user, token, nil
}

// Login authenticates by email and password. Unknown email and bad password
// both map to ErrInvalidCredentials so the response does not reveal which.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role, user.Email)
	if err != nil {
		return User{}, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/app/repositories"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
	"github.com/deniz/courseboard/internal/pkg/auth"
)

// AccountService defines the interface for registration and login operations
type AccountService interface {
	Register(ctx context.Context, name, email, password string, role models.RoleType) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ListTeachers(ctx context.Context) ([]*models.User, error)
}

// accountServiceImpl implements the AccountService interface
type accountServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AccountService {
	return &accountServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account with a hashed password
func (s *accountServiceImpl) Register(ctx context.Context, name, email, password string, role models.RoleType) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, role)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		RoleType: role,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues a signed token on success
func (s *accountServiceImpl) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("User logged in")
	return token, user, nil
}

// ListTeachers retrieves all users with the TEACHER role
func (s *accountServiceImpl) ListTeachers(ctx context.Context) ([]*models.User, error) {
	teachers, err := s.userRepo.ListByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

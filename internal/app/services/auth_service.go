package services

import (
	"context"
	"errors"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/auth"
	"github.com/selim/groupdesk/internal/pkg/logger"
)

// AuthService defines the authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, int, error)
}

type authService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a JWT. Unknown email and wrong
// password both come back as invalid credentials.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, int, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", 0, err
	}

	return user, token, expiresIn, nil
}

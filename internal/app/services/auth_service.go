package services

import (
	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/pkg/apperrors"
	"github.com/kaan/internlink/internal/pkg/auth"
)

// AuthService defines authentication operations
type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	stores     *store.Stores
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(stores *store.Stores, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		stores:     stores,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues an access token
func (s *authServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	s.stores.RLock()
	user, ok := s.stores.Users.Get(req.UserID)
	s.stores.RUnlock()

	if !ok || !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("userId", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		UserID:    user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
	}, nil
}

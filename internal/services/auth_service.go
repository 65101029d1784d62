package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/internal/utils"
	"premstore/pkg/logger"
)

type AuthService interface {
	// Login verifies admin credentials and issues a signed token.
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error)
}

type authService struct {
	userRepo  interfaces.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string              `json:"token"`
	User  *models.UserProfile `json:"user"`
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		s.logger.WithField("email", request.Email).Warn("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithField("email", user.Email).Info("Admin logged in")

	return &LoginResponse{
		Token: token,
		User:  user.Profile(),
	}, nil
}

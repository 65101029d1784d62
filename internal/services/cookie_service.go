package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/pkg/logger"
)

// ErrCookieNotFound is scoped here; cookies are purely admin inventory.
var ErrCookieNotFound = errors.New("credential not found")

type CookieService interface {
	List(ctx context.Context) ([]*models.Cookie, error)
	Add(ctx context.Context, request *AddCookieRequest) (*models.Cookie, error)
	Toggle(ctx context.Context, id primitive.ObjectID, isActive bool) error
}

type cookieService struct {
	cookieRepo interfaces.CookieRepository
	logger     *logger.Logger
}

func NewCookieService(cookieRepo interfaces.CookieRepository, logger *logger.Logger) CookieService {
	return &cookieService{
		cookieRepo: cookieRepo,
		logger:     logger,
	}
}

type AddCookieRequest struct {
	CookieName string     `json:"cookie_name" binding:"required"`
	AdminEmail string     `json:"admin_email" binding:"required,email"`
	CookieData string     `json:"cookie_data" binding:"required"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func (s *cookieService) List(ctx context.Context) ([]*models.Cookie, error) {
	return s.cookieRepo.GetAll(ctx)
}

func (s *cookieService) Add(ctx context.Context, request *AddCookieRequest) (*models.Cookie, error) {
	cookie := &models.Cookie{
		CookieName: request.CookieName,
		AdminEmail: request.AdminEmail,
		CookieData: request.CookieData,
		IsActive:   true,
		ExpiresAt:  request.ExpiresAt,
	}

	if err := s.cookieRepo.Create(ctx, cookie); err != nil {
		return nil, err
	}

	s.logger.WithField("cookie_name", cookie.CookieName).Info("Credential added")

	return cookie, nil
}

func (s *cookieService) Toggle(ctx context.Context, id primitive.ObjectID, isActive bool) error {
	err := s.cookieRepo.SetActive(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrCookieNotFound
		}
		return err
	}

	s.logger.WithField("cookie_id", id.Hex()).WithField("is_active", isActive).Info("Credential toggled")

	return nil
}

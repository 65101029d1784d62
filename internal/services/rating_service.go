package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/pkg/logger"
)

type RatingService interface {
	// Submit creates a rating for an existing order. The submitting email
	// must match the order's, and an order can only be rated once.
	Submit(ctx context.Context, request *SubmitRatingRequest) (*models.Rating, error)

	ListApproved(ctx context.Context) ([]*models.Rating, error)
	ListAll(ctx context.Context) ([]*models.Rating, error)
	Approve(ctx context.Context, id primitive.ObjectID, isApproved bool) error
}

type ratingService struct {
	ratingRepo interfaces.RatingRepository
	orderRepo  interfaces.OrderRepository
	logger     *logger.Logger
}

func NewRatingService(ratingRepo interfaces.RatingRepository, orderRepo interfaces.OrderRepository, logger *logger.Logger) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		orderRepo:  orderRepo,
		logger:     logger,
	}
}

type SubmitRatingRequest struct {
	OrderID          string `json:"order_id" binding:"required"`
	CustomerEmail    string `json:"customer_email" binding:"required,email"`
	CustomerRole     string `json:"customer_role"`
	CustomerWhatsapp string `json:"customer_whatsapp"`
	Rating           int    `json:"rating" binding:"required,min=1,max=5"`
	Review           string `json:"review"`
}

func (s *ratingService) Submit(ctx context.Context, request *SubmitRatingRequest) (*models.Rating, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, request.OrderID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	if order.CustomerEmail != request.CustomerEmail {
		return nil, ErrEmailMismatch
	}

	rating := &models.Rating{
		OrderID:          request.OrderID,
		CustomerEmail:    request.CustomerEmail,
		CustomerRole:     request.CustomerRole,
		CustomerWhatsapp: request.CustomerWhatsapp,
		Rating:           request.Rating,
		Review:           request.Review,
		IsApproved:       false,
		VoucherSent:      false,
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrRatingExists
		}
		return nil, err
	}

	s.logger.WithOrderID(request.OrderID).WithField("rating", request.Rating).Info("Rating submitted")

	return rating, nil
}

func (s *ratingService) ListApproved(ctx context.Context) ([]*models.Rating, error) {
	return s.ratingRepo.GetApproved(ctx)
}

func (s *ratingService) ListAll(ctx context.Context) ([]*models.Rating, error) {
	return s.ratingRepo.GetAll(ctx)
}

func (s *ratingService) Approve(ctx context.Context, id primitive.ObjectID, isApproved bool) error {
	err := s.ratingRepo.SetApproved(ctx, id, isApproved)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrRatingNotFound
		}
		return err
	}

	s.logger.WithField("rating_id", id.Hex()).WithField("is_approved", isApproved).Info("Rating approval updated")

	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/pkg/logger"
)

type PromoService interface {
	// Validate checks a code without consuming a use. Consumption happens
	// only during order creation.
	Validate(ctx context.Context, code string) (*models.PromoCode, error)

	List(ctx context.Context) ([]*models.PromoCode, error)
	Create(ctx context.Context, request *CreatePromoRequest) (*models.PromoCode, error)
}

type promoService struct {
	promoRepo interfaces.PromoCodeRepository
	logger    *logger.Logger
}

func NewPromoService(promoRepo interfaces.PromoCodeRepository, logger *logger.Logger) PromoService {
	return &promoService{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

type CreatePromoRequest struct {
	Code          string              `json:"code" binding:"required"`
	DiscountType  models.DiscountType `json:"discount_type" binding:"required,oneof=fixed percentage"`
	DiscountValue int64               `json:"discount_value" binding:"required,min=1"`
	MaxUsage      int                 `json:"max_usage" binding:"min=0"`
	ValidUntil    *time.Time          `json:"valid_until"`
}

func (s *promoService) Validate(ctx context.Context, code string) (*models.PromoCode, error) {
	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}

	if !promo.IsActive {
		return nil, ErrPromoNotFound
	}

	if promo.MaxUsage > 0 && promo.CurrentUsage >= promo.MaxUsage {
		return nil, ErrPromoExhausted
	}

	if promo.ValidUntil != nil && promo.ValidUntil.Before(time.Now()) {
		return nil, ErrPromoExpired
	}

	return promo, nil
}

func (s *promoService) List(ctx context.Context) ([]*models.PromoCode, error) {
	return s.promoRepo.GetAll(ctx)
}

func (s *promoService) Create(ctx context.Context, request *CreatePromoRequest) (*models.PromoCode, error) {
	promo := &models.PromoCode{
		Code:          request.Code,
		DiscountType:  request.DiscountType,
		DiscountValue: request.DiscountValue,
		MaxUsage:      request.MaxUsage,
		CurrentUsage:  0,
		ValidFrom:     time.Now(),
		ValidUntil:    request.ValidUntil,
		IsActive:      true,
	}

	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, err
	}

	s.logger.WithField("code", promo.Code).Info("Promo code created")

	return promo, nil
}

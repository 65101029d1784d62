package interfaces

import (
	"context"

	"premstore/internal/models"
)

type PromoCodeRepository interface {
	Create(ctx context.Context, promo *models.PromoCode) error
	GetByCode(ctx context.Context, code string) (*models.PromoCode, error)
	GetAll(ctx context.Context) ([]*models.PromoCode, error)

	// Redeem consumes one use of an eligible promo in a single conditional
	// update: the code must be active, within its validity window, and below
	// its usage cap. Returns ErrNotFound when no eligible promo matched, so
	// concurrent redemptions can never push usage past the cap.
	Redeem(ctx context.Context, code string) (*models.PromoCode, error)
}

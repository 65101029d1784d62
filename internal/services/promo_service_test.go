package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
)

func TestPromoService_Validate(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name          string
		code          string
		promo         *models.PromoCode
		repoError     error
		expectedError error
	}{
		{
			name: "active code with headroom",
			code: "SAVE10",
			promo: &models.PromoCode{
				Code:          "SAVE10",
				DiscountType:  models.DiscountTypePercentage,
				DiscountValue: 10,
				MaxUsage:      100,
				CurrentUsage:  42,
				IsActive:      true,
				ValidUntil:    &future,
			},
		},
		{
			name: "unlimited usage never exhausts",
			code: "FOREVER",
			promo: &models.PromoCode{
				Code:          "FOREVER",
				DiscountType:  models.DiscountTypeFixed,
				DiscountValue: 1000,
				MaxUsage:      0,
				CurrentUsage:  9999,
				IsActive:      true,
			},
		},
		{
			name:          "unknown code",
			code:          "NOPE",
			repoError:     interfaces.ErrNotFound,
			expectedError: ErrPromoNotFound,
		},
		{
			name: "deactivated code",
			code: "RETIRED",
			promo: &models.PromoCode{
				Code:     "RETIRED",
				IsActive: false,
			},
			expectedError: ErrPromoNotFound,
		},
		{
			name: "usage cap reached",
			code: "LIMITED",
			promo: &models.PromoCode{
				Code:         "LIMITED",
				MaxUsage:     3,
				CurrentUsage: 3,
				IsActive:     true,
			},
			expectedError: ErrPromoExhausted,
		},
		{
			name: "past validity window",
			code: "OLD",
			promo: &models.PromoCode{
				Code:       "OLD",
				IsActive:   true,
				ValidUntil: &past,
			},
			expectedError: ErrPromoExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promoRepo := new(MockPromoCodeRepository)
			if tt.repoError != nil {
				promoRepo.On("GetByCode", mock.Anything, tt.code).Return(nil, tt.repoError)
			} else {
				promoRepo.On("GetByCode", mock.Anything, tt.code).Return(tt.promo, nil)
			}

			service := NewPromoService(promoRepo, testLogger())
			promo, err := service.Validate(context.Background(), tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, promo)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.code, promo.Code)
		})
	}
}

func TestPromoService_Create(t *testing.T) {
	promoRepo := new(MockPromoCodeRepository)
	promoRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.PromoCode")).Return(nil)

	service := NewPromoService(promoRepo, testLogger())

	promo, err := service.Create(context.Background(), &CreatePromoRequest{
		Code:          "LAUNCH20",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
		MaxUsage:      50,
	})

	assert.NoError(t, err)
	assert.Equal(t, "LAUNCH20", promo.Code)
	assert.Equal(t, 0, promo.CurrentUsage)
	assert.True(t, promo.IsActive)
	assert.False(t, promo.ValidFrom.IsZero())
	assert.Nil(t, promo.ValidUntil)
	promoRepo.AssertExpectations(t)
}

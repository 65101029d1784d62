package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoCode_DiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		promo    PromoCode
		price    int64
		expected int64
	}{
		{
			name:     "fixed amount",
			promo:    PromoCode{DiscountType: DiscountTypeFixed, DiscountValue: 5000},
			price:    25000,
			expected: 5000,
		},
		{
			name:     "percentage of the price",
			promo:    PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 20},
			price:    25000,
			expected: 5000,
		},
		{
			name:     "percentage truncates toward zero",
			promo:    PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 33},
			price:    9999,
			expected: 3299,
		},
		{
			name:     "full percentage",
			promo:    PromoCode{DiscountType: DiscountTypePercentage, DiscountValue: 100},
			price:    25000,
			expected: 25000,
		},
		{
			name:     "unknown type grants nothing",
			promo:    PromoCode{DiscountType: "bogus", DiscountValue: 5000},
			price:    25000,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.promo.DiscountFor(tt.price))
		})
	}
}

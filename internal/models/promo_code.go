package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// PromoCode is a redeemable discount code. MaxUsage of 0 means unlimited;
// CurrentUsage only ever increments, once per redeemed order.
type PromoCode struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code" validate:"required"`
	DiscountType  DiscountType       `json:"discount_type" bson:"discount_type" validate:"required"`
	DiscountValue int64              `json:"discount_value" bson:"discount_value" validate:"required,min=0"`
	MaxUsage      int                `json:"max_usage" bson:"max_usage" default:"0"`
	CurrentUsage  int                `json:"current_usage" bson:"current_usage" default:"0"`
	ValidFrom     time.Time          `json:"valid_from" bson:"valid_from"`
	ValidUntil    *time.Time         `json:"valid_until,omitempty" bson:"valid_until,omitempty"`
	IsActive      bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// DiscountFor computes the discount this promo grants on a price. Unknown
// discount types grant nothing.
func (p *PromoCode) DiscountFor(price int64) int64 {
	switch p.DiscountType {
	case DiscountTypeFixed:
		return p.DiscountValue
	case DiscountTypePercentage:
		return price * p.DiscountValue / 100
	default:
		return 0
	}
}

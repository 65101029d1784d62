package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string
type InviteStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"

	InviteStatusPending InviteStatus = "pending"
	InviteStatusSuccess InviteStatus = "success"
	InviteStatusFailed  InviteStatus = "failed"
)

// Order is a single purchase. OrderID is the public order code handed to the
// customer; pricing fields are frozen at creation time and never change.
type Order struct {
	ID               primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrderID          string              `json:"order_id" bson:"order_id" validate:"required"`
	CustomerEmail    string              `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerWhatsapp string              `json:"customer_whatsapp" bson:"customer_whatsapp" validate:"required"`
	PackageID        primitive.ObjectID  `json:"package_id" bson:"package_id" validate:"required"`
	OriginalPrice    int64               `json:"original_price" bson:"original_price"`
	Discount         int64               `json:"discount" bson:"discount" default:"0"`
	FinalPrice       int64               `json:"final_price" bson:"final_price"`
	PromoCode        string              `json:"promo_code,omitempty" bson:"promo_code,omitempty"`
	PaymentStatus    PaymentStatus       `json:"payment_status" bson:"payment_status" default:"pending"`
	PaymentProof     string              `json:"payment_proof,omitempty" bson:"payment_proof,omitempty"`
	InviteStatus     InviteStatus        `json:"invite_status" bson:"invite_status" default:"pending"`
	InvitedAt        *time.Time          `json:"invited_at,omitempty" bson:"invited_at,omitempty"`
	InvitedByCookie  *primitive.ObjectID `json:"invited_by_cookie_id,omitempty" bson:"invited_by_cookie_id,omitempty"`
	CookieAdminEmail string              `json:"cookie_admin_email,omitempty" bson:"cookie_admin_email,omitempty"`
	Notes            string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" bson:"updated_at"`
}

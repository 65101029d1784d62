package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is customer feedback tied to a single order. OrderID carries a
// unique index, so one rating per order is enforced by the store.
type Rating struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID          string             `json:"order_id" bson:"order_id" validate:"required"`
	CustomerEmail    string             `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerRole     string             `json:"customer_role,omitempty" bson:"customer_role,omitempty"`
	CustomerWhatsapp string             `json:"customer_whatsapp,omitempty" bson:"customer_whatsapp,omitempty"`
	Rating           int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Review           string             `json:"review,omitempty" bson:"review,omitempty"`
	IsApproved       bool               `json:"is_approved" bson:"is_approved" default:"false"`
	VoucherSent      bool               `json:"voucher_sent" bson:"voucher_sent" default:"false"`
	VoucherCode      string             `json:"voucher_code,omitempty" bson:"voucher_code,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

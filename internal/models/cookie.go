package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cookie is a shared-account credential managed by admins. The name is
// historical; it has nothing to do with browser cookies.
type Cookie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CookieName  string             `json:"cookie_name" bson:"cookie_name" validate:"required"`
	AdminEmail  string             `json:"admin_email" bson:"admin_email" validate:"required,email"`
	CookieData  string             `json:"cookie_data" bson:"cookie_data" validate:"required"`
	IsActive    bool               `json:"is_active" bson:"is_active" default:"true"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	LastChecked time.Time          `json:"last_checked" bson:"last_checked"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

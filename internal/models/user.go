package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Password  string             `json:"-" bson:"password" validate:"required"`
	Role      UserRole           `json:"role" bson:"role" default:"customer"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// UserProfile is the safe subset returned to API callers.
type UserProfile struct {
	ID    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
	Role  UserRole           `json:"role"`
}

func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

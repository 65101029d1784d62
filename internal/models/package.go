package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a purchasable subscription package. PackageID is the public
// identifier shown to customers, distinct from the internal document ID.
type Package struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PackageID     string             `json:"package_id" bson:"package_id" validate:"required"`
	Name          string             `json:"name" bson:"name" validate:"required"`
	Price         int64              `json:"price" bson:"price" validate:"required,min=0"`
	OriginalPrice int64              `json:"original_price" bson:"original_price" validate:"required,min=0"`
	Duration      string             `json:"duration" bson:"duration" validate:"required"`
	Features      []string           `json:"features" bson:"features"`
	IsPopular     bool               `json:"is_popular" bson:"is_popular" default:"false"`
	IsActive      bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

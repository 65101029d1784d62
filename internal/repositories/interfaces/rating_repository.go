package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
)

type RatingRepository interface {
	// Create inserts a rating. A second rating for the same order code fails
	// with ErrDuplicate via the unique index.
	Create(ctx context.Context, rating *models.Rating) error

	GetApproved(ctx context.Context) ([]*models.Rating, error)
	GetAll(ctx context.Context) ([]*models.Rating, error)
	SetApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) error
}

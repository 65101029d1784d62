package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

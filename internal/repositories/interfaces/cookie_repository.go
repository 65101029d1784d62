package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
)

type CookieRepository interface {
	Create(ctx context.Context, cookie *models.Cookie) error
	GetAll(ctx context.Context) ([]*models.Cookie, error)
	SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) error
}

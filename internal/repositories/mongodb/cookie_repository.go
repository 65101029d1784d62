package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
)

type cookieRepository struct {
	collection *mongo.Collection
}

func NewCookieRepository(db *mongo.Database) interfaces.CookieRepository {
	return &cookieRepository{
		collection: db.Collection("cookies"),
	}
}

func (r *cookieRepository) Create(ctx context.Context, cookie *models.Cookie) error {
	cookie.ID = primitive.NewObjectID()
	cookie.LastChecked = time.Now()
	cookie.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, cookie)
	if err != nil {
		return fmt.Errorf("failed to create cookie: %w", err)
	}

	return nil
}

func (r *cookieRepository) GetAll(ctx context.Context) ([]*models.Cookie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find cookies: %w", err)
	}
	defer cursor.Close(ctx)

	var cookies []*models.Cookie
	for cursor.Next(ctx) {
		var cookie models.Cookie
		if err := cursor.Decode(&cookie); err != nil {
			return nil, fmt.Errorf("failed to decode cookie: %w", err)
		}
		cookies = append(cookies, &cookie)
	}

	return cookies, nil
}

func (r *cookieRepository) SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"is_active":    isActive,
			"last_checked": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update cookie: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cookie %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}

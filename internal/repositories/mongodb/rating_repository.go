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

type ratingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) interfaces.RatingRepository {
	return &ratingRepository{
		collection: db.Collection("ratings"),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	rating.ID = primitive.NewObjectID()
	rating.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, rating)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("rating for order %s: %w", rating.OrderID, interfaces.ErrDuplicate)
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}

	return nil
}

func (r *ratingRepository) GetApproved(ctx context.Context) ([]*models.Rating, error) {
	return r.findRatings(ctx, bson.M{"is_approved": true})
}

func (r *ratingRepository) GetAll(ctx context.Context) ([]*models.Rating, error) {
	return r.findRatings(ctx, bson.M{})
}

func (r *ratingRepository) SetApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_approved": isApproved}},
	)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("rating %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	return nil
}

func (r *ratingRepository) findRatings(ctx context.Context, filter bson.M) ([]*models.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []*models.Rating
	for cursor.Next(ctx) {
		var rating models.Rating
		if err := cursor.Decode(&rating); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

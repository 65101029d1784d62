package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/internal/utils"
)

type promoCodeRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewPromoCodeRepository(db *mongo.Database, cache CacheService) interfaces.PromoCodeRepository {
	return &promoCodeRepository{
		collection: db.Collection("promo_codes"),
		cache:      cache,
	}
}

func (r *promoCodeRepository) Create(ctx context.Context, promo *models.PromoCode) error {
	promo.ID = primitive.NewObjectID()
	promo.Code = strings.ToUpper(promo.Code)
	if promo.ValidFrom.IsZero() {
		promo.ValidFrom = time.Now()
	}
	promo.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, promo)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("promo code %s: %w", promo.Code, interfaces.ErrDuplicate)
		}
		return fmt.Errorf("failed to create promo code: %w", err)
	}

	return nil
}

func (r *promoCodeRepository) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	code = strings.ToUpper(code)

	cacheKey := utils.CacheKeyPromoPrefix + code
	if r.cache != nil {
		var promo models.PromoCode
		if err := r.cache.Get(ctx, cacheKey, &promo); err == nil {
			return &promo, nil
		}
	}

	var promo models.PromoCode
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("promo code %s: %w", code, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	if r.cache != nil && promo.IsActive {
		r.cache.Set(ctx, cacheKey, promo, utils.PromoCacheTTL)
	}

	return &promo, nil
}

func (r *promoCodeRepository) GetAll(ctx context.Context) ([]*models.PromoCode, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find promo codes: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []*models.PromoCode
	for cursor.Next(ctx) {
		var promo models.PromoCode
		if err := cursor.Decode(&promo); err != nil {
			return nil, fmt.Errorf("failed to decode promo code: %w", err)
		}
		promos = append(promos, &promo)
	}

	return promos, nil
}

// Redeem increments current_usage in the same conditional update that checks
// eligibility, so the cap holds under concurrent checkouts. The returned
// document reflects the state after the increment.
func (r *promoCodeRepository) Redeem(ctx context.Context, code string) (*models.PromoCode, error) {
	code = strings.ToUpper(code)
	now := time.Now()

	filter := bson.M{
		"code":       code,
		"is_active":  true,
		"valid_from": bson.M{"$lte": now},
		"$and": []bson.M{
			{"$or": []bson.M{
				{"valid_until": nil},
				{"valid_until": bson.M{"$exists": false}},
				{"valid_until": bson.M{"$gte": now}},
			}},
			{"$or": []bson.M{
				{"max_usage": 0},
				{"$expr": bson.M{"$lt": []interface{}{"$current_usage", "$max_usage"}}},
			}},
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var promo models.PromoCode
	err := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$inc": bson.M{"current_usage": 1}},
		opts,
	).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("promo code %s not redeemable: %w", code, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to redeem promo code: %w", err)
	}

	r.invalidateCache(ctx, promo.Code)

	return &promo, nil
}

func (r *promoCodeRepository) invalidateCache(ctx context.Context, code string) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheKeyPromoPrefix+code)
	}
}

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
	"premstore/internal/utils"
)

type packageRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewPackageRepository(db *mongo.Database, cache CacheService) interfaces.PackageRepository {
	return &packageRepository{
		collection: db.Collection("packages"),
		cache:      cache,
	}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = time.Now()
	pkg.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("package %s: %w", pkg.PackageID, interfaces.ErrDuplicate)
		}
		return fmt.Errorf("failed to create package: %w", err)
	}

	r.invalidateActiveCache(ctx)

	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	var pkg models.Package
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return &pkg, nil
}

func (r *packageRepository) GetByPackageID(ctx context.Context, packageID string) (*models.Package, error) {
	cacheKey := utils.CacheKeyPackagePrefix + packageID
	if r.cache != nil {
		var pkg models.Package
		if err := r.cache.Get(ctx, cacheKey, &pkg); err == nil {
			return &pkg, nil
		}
	}

	var pkg models.Package
	err := r.collection.FindOne(ctx, bson.M{"package_id": packageID}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package %s: %w", packageID, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get package by package_id: %w", err)
	}

	if r.cache != nil && pkg.IsActive {
		r.cache.Set(ctx, cacheKey, pkg, utils.PackageCacheTTL)
	}

	return &pkg, nil
}

func (r *packageRepository) GetActive(ctx context.Context) ([]*models.Package, error) {
	if r.cache != nil {
		var packages []*models.Package
		if err := r.cache.Get(ctx, utils.CacheKeyActivePackages, &packages); err == nil {
			return packages, nil
		}
	}

	packages, err := r.findPackages(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, utils.CacheKeyActivePackages, packages, utils.PackageCacheTTL)
	}

	return packages, nil
}

func (r *packageRepository) GetAll(ctx context.Context) ([]*models.Package, error) {
	return r.findPackages(ctx, bson.M{})
}

func (r *packageRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	r.invalidateActiveCache(ctx)

	// The per-package key is derived from the public identifier, so fetch it
	// back to invalidate.
	var pkg struct {
		PackageID string `bson:"package_id"`
	}
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err == nil {
		r.invalidatePackageCache(ctx, pkg.PackageID)
	}

	return nil
}

func (r *packageRepository) findPackages(ctx context.Context, filter bson.M) ([]*models.Package, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []*models.Package
	for cursor.Next(ctx) {
		var pkg models.Package
		if err := cursor.Decode(&pkg); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *packageRepository) invalidateActiveCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheKeyActivePackages)
	}
}

func (r *packageRepository) invalidatePackageCache(ctx context.Context, packageID string) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheKeyPackagePrefix+packageID)
	}
}

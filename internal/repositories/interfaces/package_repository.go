package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error)

	// GetByPackageID looks a package up by its public identifier.
	GetByPackageID(ctx context.Context, packageID string) (*models.Package, error)

	// GetActive returns packages visible to customers.
	GetActive(ctx context.Context) ([]*models.Package, error)

	// GetAll returns every package, including deactivated ones.
	GetAll(ctx context.Context) ([]*models.Package, error)

	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
}

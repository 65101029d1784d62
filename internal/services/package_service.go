package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/pkg/logger"
)

type PackageService interface {
	// ListActive returns packages visible on the storefront.
	ListActive(ctx context.Context) ([]*models.Package, error)
	GetByPackageID(ctx context.Context, packageID string) (*models.Package, error)

	// ListAll returns every package for the admin dashboard.
	ListAll(ctx context.Context) ([]*models.Package, error)
	Update(ctx context.Context, id primitive.ObjectID, request *UpdatePackageRequest) error
}

type packageService struct {
	packageRepo interfaces.PackageRepository
	logger      *logger.Logger
}

func NewPackageService(packageRepo interfaces.PackageRepository, logger *logger.Logger) PackageService {
	return &packageService{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// UpdatePackageRequest carries partial edits; nil fields are left untouched.
type UpdatePackageRequest struct {
	Name          *string  `json:"name"`
	Price         *int64   `json:"price"`
	OriginalPrice *int64   `json:"original_price"`
	Duration      *string  `json:"duration"`
	Features      []string `json:"features"`
	IsPopular     *bool    `json:"is_popular"`
	IsActive      *bool    `json:"is_active"`
}

func (s *packageService) ListActive(ctx context.Context) ([]*models.Package, error) {
	return s.packageRepo.GetActive(ctx)
}

func (s *packageService) GetByPackageID(ctx context.Context, packageID string) (*models.Package, error) {
	pkg, err := s.packageRepo.GetByPackageID(ctx, packageID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) ListAll(ctx context.Context) ([]*models.Package, error) {
	return s.packageRepo.GetAll(ctx)
}

func (s *packageService) Update(ctx context.Context, id primitive.ObjectID, request *UpdatePackageRequest) error {
	updates := make(map[string]interface{})

	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Price != nil {
		updates["price"] = *request.Price
	}
	if request.OriginalPrice != nil {
		updates["original_price"] = *request.OriginalPrice
	}
	if request.Duration != nil {
		updates["duration"] = *request.Duration
	}
	if request.Features != nil {
		updates["features"] = request.Features
	}
	if request.IsPopular != nil {
		updates["is_popular"] = *request.IsPopular
	}
	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}

	if len(updates) == 0 {
		return nil
	}

	err := s.packageRepo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to update package: %w", err)
	}

	s.logger.WithField("package_id", id.Hex()).Info("Package updated")

	return nil
}

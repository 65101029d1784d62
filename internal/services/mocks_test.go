package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
	"premstore/internal/utils"
	"premstore/pkg/logger"
)

func testLogger() *logger.Logger {
	l, _ := logger.NewLogger(&logger.Config{
		Level:  logger.ErrorLevel,
		Format: "text",
		Output: "stderr",
	})
	return l
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *models.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByPackageID(ctx context.Context, packageID string) (*models.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Package), args.Error(1)
}

func (m *MockPackageRepository) GetActive(ctx context.Context) ([]*models.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAll(ctx context.Context) ([]*models.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Package), args.Error(1)
}

func (m *MockPackageRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInviteStatus(ctx context.Context, orderID string, status models.InviteStatus, cookieAdminEmail string) error {
	args := m.Called(ctx, orderID, status, cookieAdminEmail)
	return args.Error(0)
}

type MockPromoCodeRepository struct {
	mock.Mock
}

func (m *MockPromoCodeRepository) Create(ctx context.Context, promo *models.PromoCode) error {
	args := m.Called(ctx, promo)
	return args.Error(0)
}

func (m *MockPromoCodeRepository) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCode), args.Error(1)
}

func (m *MockPromoCodeRepository) GetAll(ctx context.Context) ([]*models.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PromoCode), args.Error(1)
}

func (m *MockPromoCodeRepository) Redeem(ctx context.Context, code string) (*models.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCode), args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetApproved(ctx context.Context) ([]*models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetAll(ctx context.Context) ([]*models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) SetApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) error {
	args := m.Called(ctx, id, isApproved)
	return args.Error(0)
}

type MockCookieRepository struct {
	mock.Mock
}

func (m *MockCookieRepository) Create(ctx context.Context, cookie *models.Cookie) error {
	args := m.Called(ctx, cookie)
	return args.Error(0)
}

func (m *MockCookieRepository) GetAll(ctx context.Context) ([]*models.Cookie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Cookie), args.Error(1)
}

func (m *MockCookieRepository) SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

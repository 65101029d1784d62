package services

import (
	"context"
	"errors"
	"fmt"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
	"premstore/internal/utils"
	"premstore/pkg/logger"
)

type OrderService interface {
	// Create prices and persists a new order. A supplied promo code is
	// redeemed atomically; if it is not redeemable the order still goes
	// through at full price.
	Create(ctx context.Context, request *CreateOrderRequest) (*models.Order, error)

	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error)
	UpdatePayment(ctx context.Context, orderID string, status models.PaymentStatus) error
	UpdateInvite(ctx context.Context, orderID string, status models.InviteStatus, cookieAdminEmail string) error
}

type orderService struct {
	orderRepo   interfaces.OrderRepository
	packageRepo interfaces.PackageRepository
	promoRepo   interfaces.PromoCodeRepository
	logger      *logger.Logger
}

func NewOrderService(
	orderRepo interfaces.OrderRepository,
	packageRepo interfaces.PackageRepository,
	promoRepo interfaces.PromoCodeRepository,
	logger *logger.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		promoRepo:   promoRepo,
		logger:      logger,
	}
}

type CreateOrderRequest struct {
	CustomerEmail    string `json:"customer_email" binding:"required,email"`
	CustomerWhatsapp string `json:"customer_whatsapp" binding:"required"`
	PackageID        string `json:"package_id" binding:"required"`
	PromoCode        string `json:"promo_code"`
}

func (s *orderService) Create(ctx context.Context, request *CreateOrderRequest) (*models.Order, error) {
	pkg, err := s.packageRepo.GetByPackageID(ctx, request.PackageID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to resolve package: %w", err)
	}

	originalPrice := pkg.Price
	var discount int64
	usedPromo := ""

	if request.PromoCode != "" {
		promo, err := s.promoRepo.Redeem(ctx, request.PromoCode)
		switch {
		case err == nil:
			discount = promo.DiscountFor(originalPrice)
			usedPromo = promo.Code
		case errors.Is(err, interfaces.ErrNotFound):
			// Unredeemable codes do not block checkout; the order proceeds
			// at full price.
			s.logger.WithField("code", request.PromoCode).Warn("Promo code not redeemable, ignoring")
		default:
			return nil, fmt.Errorf("failed to redeem promo code: %w", err)
		}
	}

	order := &models.Order{
		OrderID:          utils.GenerateOrderCode(),
		CustomerEmail:    request.CustomerEmail,
		CustomerWhatsapp: request.CustomerWhatsapp,
		PackageID:        pkg.ID,
		OriginalPrice:    originalPrice,
		Discount:         discount,
		FinalPrice:       originalPrice - discount,
		PromoCode:        usedPromo,
		PaymentStatus:    models.PaymentStatusPending,
		InviteStatus:     models.InviteStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id":    order.OrderID,
		"package_id":  pkg.PackageID,
		"final_price": order.FinalPrice,
	}).Info("Order created")

	return order, nil
}

func (s *orderService) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	return s.orderRepo.GetAll(ctx, params)
}

func (s *orderService) UpdatePayment(ctx context.Context, orderID string, status models.PaymentStatus) error {
	err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	s.logger.WithOrderID(orderID).WithField("payment_status", status).Info("Order payment status updated")

	return nil
}

func (s *orderService) UpdateInvite(ctx context.Context, orderID string, status models.InviteStatus, cookieAdminEmail string) error {
	err := s.orderRepo.UpdateInviteStatus(ctx, orderID, status, cookieAdminEmail)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	s.logger.WithOrderID(orderID).WithField("invite_status", status).Info("Order invite status updated")

	return nil
}

package interfaces

import (
	"context"

	"premstore/internal/models"
	"premstore/internal/utils"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error

	// GetByOrderID looks an order up by its public order code.
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)

	GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error)

	UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error

	// UpdateInviteStatus records delivery of the purchased account. invitedAt
	// is set when the invite succeeded and cleared otherwise.
	UpdateInviteStatus(ctx context.Context, orderID string, status models.InviteStatus, cookieAdminEmail string) error
}

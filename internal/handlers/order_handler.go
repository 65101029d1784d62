package handlers

import (
	"github.com/gin-gonic/gin"

	"premstore/internal/models"
	"premstore/internal/services"
	"premstore/internal/utils"
	"premstore/internal/validators"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder prices a package, optionally redeems a promo code, and
// persists the order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var request services.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Order created successfully", order)
}

// GetOrder returns an order by its public order code.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetByOrderID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Order retrieved successfully", order)
}

// ListOrders returns orders for the admin dashboard, paginated.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.List(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Orders retrieved successfully", orders, meta)
}

type updatePaymentRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required,oneof=pending paid failed"`
}

// UpdateOrderPayment sets an order's payment status.
func (h *OrderHandler) UpdateOrderPayment(c *gin.Context) {
	var request updatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	if err := h.orderService.UpdatePayment(c.Request.Context(), c.Param("order_id"), request.PaymentStatus); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment status updated successfully", nil)
}

type updateInviteRequest struct {
	InviteStatus     models.InviteStatus `json:"invite_status" binding:"required,oneof=pending success failed"`
	CookieAdminEmail string              `json:"cookie_admin_email" binding:"omitempty,email"`
}

// UpdateOrderInvite records delivery of the purchased account access.
func (h *OrderHandler) UpdateOrderInvite(c *gin.Context) {
	var request updateInviteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	if err := h.orderService.UpdateInvite(c.Request.Context(), c.Param("order_id"), request.InviteStatus, request.CookieAdminEmail); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Invite status updated successfully", nil)
}

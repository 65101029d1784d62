package handlers

import (
	"github.com/gin-gonic/gin"

	"premstore/internal/services"
	"premstore/internal/utils"
	"premstore/internal/validators"
)

type PromoHandler struct {
	promoService services.PromoService
}

func NewPromoHandler(promoService services.PromoService) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

type validatePromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// ValidatePromoCode checks a code before checkout without consuming a use.
func (h *PromoHandler) ValidatePromoCode(c *gin.Context) {
	var request validatePromoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	promo, err := h.promoService.Validate(c.Request.Context(), request.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Promo code is valid", promo)
}

// ListPromoCodes returns all promo codes for the admin dashboard.
func (h *PromoHandler) ListPromoCodes(c *gin.Context) {
	promos, err := h.promoService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Promo codes retrieved successfully", promos)
}

// AddPromoCode creates a new promo code.
func (h *PromoHandler) AddPromoCode(c *gin.Context) {
	var request services.CreatePromoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	promo, err := h.promoService.Create(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Promo code created successfully", promo)
}

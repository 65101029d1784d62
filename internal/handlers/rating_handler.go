package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/services"
	"premstore/internal/utils"
	"premstore/internal/validators"
)

type RatingHandler struct {
	ratingService services.RatingService
}

func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// SubmitRating creates a rating for an order the customer owns.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var request services.SubmitRatingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Rating submitted successfully", rating)
}

// ListApprovedRatings returns ratings cleared for public display.
func (h *RatingHandler) ListApprovedRatings(c *gin.Context) {
	ratings, err := h.ratingService.ListApproved(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ratings retrieved successfully", ratings)
}

// ListRatings returns every rating for the admin dashboard.
func (h *RatingHandler) ListRatings(c *gin.Context) {
	ratings, err := h.ratingService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ratings retrieved successfully", ratings)
}

type approveRatingRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// ApproveRating toggles whether a rating is shown publicly.
func (h *RatingHandler) ApproveRating(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid rating ID")
		return
	}

	var request approveRatingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	if err := h.ratingService.Approve(c.Request.Context(), id, *request.IsApproved); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Rating approval updated successfully", nil)
}

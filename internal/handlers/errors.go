package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"premstore/internal/services"
	"premstore/internal/utils"
)

// respondServiceError maps service failure kinds to HTTP responses. Unknown
// errors collapse to 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPackageNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrRatingNotFound),
		errors.Is(err, services.ErrCookieNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrPromoNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "PROMO_INVALID", err.Error())
	case errors.Is(err, services.ErrPromoExhausted):
		utils.ErrorResponse(c, http.StatusGone, "PROMO_EXHAUSTED", err.Error())
	case errors.Is(err, services.ErrPromoExpired):
		utils.ErrorResponse(c, http.StatusGone, "PROMO_EXPIRED", err.Error())
	case errors.Is(err, services.ErrEmailMismatch):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "EMAIL_MISMATCH", err.Error())
	case errors.Is(err, services.ErrRatingExists):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "AUTH_FAILED", err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}

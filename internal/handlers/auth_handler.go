package handlers

import (
	"github.com/gin-gonic/gin"

	"premstore/internal/services"
	"premstore/internal/utils"
	"premstore/internal/validators"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates an admin and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Login successful", response)
}

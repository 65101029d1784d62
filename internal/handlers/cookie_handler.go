package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/services"
	"premstore/internal/utils"
	"premstore/internal/validators"
)

type CookieHandler struct {
	cookieService services.CookieService
}

func NewCookieHandler(cookieService services.CookieService) *CookieHandler {
	return &CookieHandler{
		cookieService: cookieService,
	}
}

// ListCookies returns the shared-account credential inventory.
func (h *CookieHandler) ListCookies(c *gin.Context) {
	cookies, err := h.cookieService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Credentials retrieved successfully", cookies)
}

// AddCookie registers a new shared-account credential.
func (h *CookieHandler) AddCookie(c *gin.Context) {
	var request services.AddCookieRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	cookie, err := h.cookieService.Add(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Credential added successfully", cookie)
}

type toggleCookieRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ToggleCookie activates or deactivates a credential.
func (h *CookieHandler) ToggleCookie(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid credential ID")
		return
	}

	var request toggleCookieRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	if err := h.cookieService.Toggle(c.Request.Context(), id, *request.IsActive); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Credential updated successfully", nil)
}

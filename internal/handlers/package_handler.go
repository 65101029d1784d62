package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/services"
	"premstore/internal/utils"
	"premstore/internal/validators"
)

type PackageHandler struct {
	packageService services.PackageService
}

func NewPackageHandler(packageService services.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// ListPackages returns the packages visible to customers.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packageService.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Packages retrieved successfully", packages)
}

// GetPackage returns a single package by its public identifier.
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetByPackageID(c.Request.Context(), c.Param("package_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Package retrieved successfully", pkg)
}

// ListPackagesAdmin returns every package, including deactivated ones.
func (h *PackageHandler) ListPackagesAdmin(c *gin.Context) {
	packages, err := h.packageService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Packages retrieved successfully", packages)
}

// UpdatePackage applies a partial edit to a package.
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid package ID")
		return
	}

	var request services.UpdatePackageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, validators.FormatValidationErrors(err))
		return
	}

	if err := h.packageService.Update(c.Request.Context(), id, &request); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Package updated successfully", nil)
}

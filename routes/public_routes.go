package routes

import (
	"github.com/gin-gonic/gin"

	"premstore/internal/handlers"
)

// SetupPublicRoutes mounts the customer-facing endpoints.
func SetupPublicRoutes(
	r *gin.RouterGroup,
	packageHandler *handlers.PackageHandler,
	orderHandler *handlers.OrderHandler,
	promoHandler *handlers.PromoHandler,
	ratingHandler *handlers.RatingHandler,
) {
	packages := r.Group("/packages")
	{
		packages.GET("", packageHandler.ListPackages)
		packages.GET("/:package_id", packageHandler.GetPackage)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}

	promos := r.Group("/promos")
	{
		promos.POST("/validate", promoHandler.ValidatePromoCode)
	}

	ratings := r.Group("/ratings")
	{
		ratings.POST("", ratingHandler.SubmitRating)
		ratings.GET("", ratingHandler.ListApprovedRatings)
	}
}

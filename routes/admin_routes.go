package routes

import (
	"github.com/gin-gonic/gin"

	"premstore/internal/handlers"
	"premstore/internal/middleware"
)

// SetupAdminRoutes mounts the admin endpoints. Everything except login sits
// behind the bearer-token gate.
func SetupAdminRoutes(
	r *gin.RouterGroup,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	packageHandler *handlers.PackageHandler,
	orderHandler *handlers.OrderHandler,
	promoHandler *handlers.PromoHandler,
	ratingHandler *handlers.RatingHandler,
	cookieHandler *handlers.CookieHandler,
) {
	admin := r.Group("/admin")

	admin.POST("/login", authHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		protected.GET("/orders", orderHandler.ListOrders)
		protected.PUT("/orders/:order_id/payment", orderHandler.UpdateOrderPayment)
		protected.PUT("/orders/:order_id/invite", orderHandler.UpdateOrderInvite)

		protected.GET("/packages", packageHandler.ListPackagesAdmin)
		protected.PUT("/packages/:id", packageHandler.UpdatePackage)

		protected.GET("/cookies", cookieHandler.ListCookies)
		protected.POST("/cookies", cookieHandler.AddCookie)
		protected.PUT("/cookies/:id", cookieHandler.ToggleCookie)

		protected.GET("/promos", promoHandler.ListPromoCodes)
		protected.POST("/promos", promoHandler.AddPromoCode)

		protected.GET("/ratings", ratingHandler.ListRatings)
		protected.PUT("/ratings/:id/approve", ratingHandler.ApproveRating)
	}
}

package utils

import "time"

// Application constants
const (
	AppName    = "PremStore"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength = 8

	// Orders
	OrderCodePrefix = "ORD-"
	OrderCodeLength = 10

	// Ratings
	MinRatingValue = 1
	MaxRatingValue = 5

	// Vouchers
	VoucherCodeLength = 8

	// Cache
	PackageCacheTTL = 10 * time.Minute
	PromoCacheTTL   = 5 * time.Minute
)

// HTTP status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrInvalidCredentials = "invalid email or password"
	ErrInvalidToken       = "invalid token"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "admin access required"
	ErrInternalServer     = "internal server error"
	ErrValidationFailed   = "validation failed"
	ErrPackageNotFound    = "package not found"
	ErrOrderNotFound      = "order not found"
	ErrPromoNotFound      = "invalid promo code"
	ErrPromoExhausted     = "promo code usage limit reached"
	ErrPromoExpired       = "promo code has expired"
	ErrEmailMismatch      = "email does not match the order"
	ErrRatingExists       = "order has already been rated"
)

// Cache keys
const (
	CacheKeyActivePackages = "packages:active"
	CacheKeyPackagePrefix  = "package:"
	CacheKeyPromoPrefix    = "promo_code:"
)

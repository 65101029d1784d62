package services

import (
	"errors"

	"premstore/internal/utils"
)

// Failure kinds surfaced to handlers. Each keeps the customer-facing message
// while letting callers branch with errors.Is.
var (
	ErrInvalidCredentials = errors.New(utils.ErrInvalidCredentials)
	ErrPackageNotFound    = errors.New(utils.ErrPackageNotFound)
	ErrOrderNotFound      = errors.New(utils.ErrOrderNotFound)
	ErrPromoNotFound      = errors.New(utils.ErrPromoNotFound)
	ErrPromoExhausted     = errors.New(utils.ErrPromoExhausted)
	ErrPromoExpired       = errors.New(utils.ErrPromoExpired)
	ErrEmailMismatch      = errors.New(utils.ErrEmailMismatch)
	ErrRatingExists       = errors.New(utils.ErrRatingExists)
	ErrRatingNotFound     = errors.New("rating not found")
)

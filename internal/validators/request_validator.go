package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var orderCodePattern = regexp.MustCompile(`^ORD-[A-Z0-9]{10}$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("order_code", validateOrderCode)
	validate.RegisterValidation("discount_type", validateDiscountType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidOrderCode reports whether a string has the public order code shape.
func IsValidOrderCode(code string) bool {
	return orderCodePattern.MatchString(code)
}

func validateOrderCode(fl validator.FieldLevel) bool {
	return IsValidOrderCode(fl.Field().String())
}

func validateDiscountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed", "percentage":
		return true
	}
	return false
}

// FormatValidationErrors flattens validator errors into a field→message map
// for the API error payload. Non-validation errors map to a single entry.
func FormatValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["request"] = err.Error()
		return details
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			details[field] = fmt.Sprintf("%s is required", field)
		case "email":
			details[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			details[field] = fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
		case "max":
			details[field] = fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
		case "oneof":
			details[field] = fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
		default:
			details[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return details
}

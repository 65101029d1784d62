package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderCode(t *testing.T) {
	valid := []string{
		"ORD-ABCDEFGHIJ",
		"ORD-1234567890",
		"ORD-A1B2C3D4E5",
	}
	for _, code := range valid {
		assert.True(t, IsValidOrderCode(code), code)
	}

	invalid := []string{
		"",
		"ORD-",
		"ORD-abcdefghij",
		"ORD-ABCDEFGHI",
		"ORD-ABCDEFGHIJK",
		"XYZ-ABCDEFGHIJ",
		"ORD-ABCDE FGHI",
	}
	for _, code := range invalid {
		assert.False(t, IsValidOrderCode(code), code)
	}
}

func TestValidateStruct(t *testing.T) {
	type orderLookup struct {
		OrderID string `validate:"required,order_code"`
	}

	assert.NoError(t, ValidateStruct(&orderLookup{OrderID: "ORD-ABCDEFGH12"}))
	assert.Error(t, ValidateStruct(&orderLookup{OrderID: "bad"}))

	type promoInput struct {
		DiscountType string `validate:"required,discount_type"`
	}

	assert.NoError(t, ValidateStruct(&promoInput{DiscountType: "fixed"}))
	assert.NoError(t, ValidateStruct(&promoInput{DiscountType: "percentage"}))
	assert.Error(t, ValidateStruct(&promoInput{DiscountType: "bogus"}))
}

func TestFormatValidationErrors(t *testing.T) {
	type loginInput struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	err := ValidateStruct(&loginInput{Email: "not-an-email"})
	assert.Error(t, err)

	details := FormatValidationErrors(err)
	assert.Contains(t, details["email"], "valid email")
	assert.Contains(t, details["password"], "required")
}

package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderCode(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[A-Z0-9]{10}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateOrderCode()
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "generated a duplicate order code: %s", code)
		seen[code] = true
	}
}

func TestGenerateVoucherCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]+$`)

	code := GenerateVoucherCode()
	assert.Len(t, code, VoucherCodeLength)
	assert.Regexp(t, pattern, code)
}

package utils

import (
	"crypto/rand"
	"math/big"
)

const upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderCode produces the public order identifier: a fixed prefix
// followed by random uppercase alphanumerics. The suffix space is large
// enough that collisions are not handled beyond the unique index.
func GenerateOrderCode() string {
	return OrderCodePrefix + generateRandom(OrderCodeLength, upperAlphanumeric)
}

// GenerateVoucherCode produces a short code sent to customers whose rating
// earned a voucher.
func GenerateVoucherCode() string {
	return generateRandom(VoucherCodeLength, upperAlphanumeric)
}

func generateRandom(length int, charset string) string {
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(charset)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = charset[num.Int64()]
	}

	return string(result)
}

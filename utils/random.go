package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GenerateCode returns n random bytes as an upper-case hex string.
func GenerateCode(n int) (string, error) {
	byt := make([]byte, n)
	if _, err := rand.Read(byt); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(byt)), nil
}

// ReferenceCode builds a payment-style reference such as "CTR-1A2B3C4D".
// Falls back to a fixed tag only if the system RNG is unusable.
func ReferenceCode(prefix string) string {
	code, err := GenerateCode(4)
	if err != nil {
		return prefix + "-00000000"
	}
	return prefix + "-" + code
}

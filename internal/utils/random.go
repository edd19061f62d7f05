package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateRefreshToken creates an opaque session token with 40 bytes of
// entropy, hex encoded. Refresh tokens are revocable store-backed secrets
// and must never share a mechanism with password hashes or OTPs.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, 40)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var otpMax = big.NewInt(1000000)

// GenerateOTP creates a 6-digit one-time code, zero-padded, from crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

package utils

import (
	"testing"
)

func TestGenerateRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	// 40 random bytes, hex encoded
	if len(token) != 80 {
		t.Errorf("token length = %d, expected 80", len(token))
	}

	for _, r := range token {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Errorf("token contains non-hex character %q", r)
			break
		}
	}
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateRefreshToken()
		if err != nil {
			t.Fatalf("GenerateRefreshToken() error = %v", err)
		}
		if seen[token] {
			t.Fatal("duplicate refresh token generated")
		}
		seen[token] = true
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP() error = %v", err)
		}

		if len(otp) != 6 {
			t.Errorf("OTP length = %d, expected 6", len(otp))
		}

		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Errorf("OTP contains non-digit character %q in %q", r, otp)
				break
			}
		}
	}
}

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	passwordLength   = 24
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GeneratePassword returns a 24-character random password drawn from
// letters and digits, guaranteed to contain at least one lowercase letter,
// one uppercase letter, and one digit. Candidates missing a class are
// rejected and regenerated; with this alphabet and length the rejection
// probability is astronomically low, so no iteration cap is needed.
func GeneratePassword() (string, error) {
	alphabetLen := big.NewInt(int64(len(passwordAlphabet)))

	for {
		buf := make([]byte, passwordLength)
		for i := range buf {
			n, err := rand.Int(rand.Reader, alphabetLen)
			if err != nil {
				return "", fmt.Errorf("read random: %w", err)
			}
			buf[i] = passwordAlphabet[n.Int64()]
		}

		var hasLower, hasUpper, hasDigit bool
		for _, c := range buf {
			switch {
			case c >= 'a' && c <= 'z':
				hasLower = true
			case c >= 'A' && c <= 'Z':
				hasUpper = true
			case c >= '0' && c <= '9':
				hasDigit = true
			}
		}
		if hasLower && hasUpper && hasDigit {
			return string(buf), nil
		}
	}
}

// Package auth holds the PIN credential helpers. Meetings are guarded by a
// 4-digit PIN whose SHA-256 digest is stored; join attempts are verified by
// comparing digests, never plaintext.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// PinLength is the required number of digits in a meeting PIN.
const PinLength = 4

// HashPin returns the lowercase hex SHA-256 digest of the PIN's UTF-8 bytes.
// Deterministic: the same PIN always yields the same digest.
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPin reports whether the PIN matches the stored digest.
// Comparison is constant-time over the hex digests.
func VerifyPin(pin, pinHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPin(pin)), []byte(pinHash)) == 1
}

// ValidPin reports whether the PIN is exactly four ASCII digits.
func ValidPin(pin string) bool {
	if len(pin) != PinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

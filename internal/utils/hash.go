package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString(blob, "my-secret-key")
func HashString(data []byte, hashKey string) string {
	return hex.EncodeToString(hashBytes(data, hashKey))
}

// VerifyHashString reports whether signature is the hex HMAC-SHA256 of data
// under hashKey. The comparison is constant time.
func VerifyHashString(data []byte, hashKey, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, hashBytes(data, hashKey))
}

// hashBytes computes an HMAC-SHA256 digest over data.
// A new HMAC instance is created on each call.
func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

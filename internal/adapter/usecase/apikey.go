package usecase

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

const apiKeyPrefix = "ck_"

// HashAPIKey returns the hex SHA-256 of key. Brands are looked up by this
// hash, so it has to be deterministic.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// GenerateAPIKey returns a new random plaintext key.
func GenerateAPIKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return apiKeyPrefix + hex.EncodeToString(b), nil
}

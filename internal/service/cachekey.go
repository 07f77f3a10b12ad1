package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gzhole/labelshield/internal/profile"
)

// CacheKey hashes the canonical JSON of (catalog fingerprint, ingredients,
// profile). Ingredients keep their order and display case because both
// show up in the result; the profile is canonicalized because only its
// normalized sets affect scoring.
func CacheKey(fingerprint string, ingredients []string, p profile.Profile) string {
	payload := struct {
		Catalog     string          `json:"catalog"`
		Ingredients []string        `json:"ingredients"`
		Profile     profile.Profile `json:"profile"`
	}{
		Catalog:     fingerprint,
		Ingredients: ingredients,
		Profile:     p.Canonical(),
	}

	// Marshal of strings and string slices cannot fail.
	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

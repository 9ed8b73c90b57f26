package idiomate

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key for one translation: text hash plus the
// language pair. Source is part of the key because the same string can be
// valid input in more than one language.
func CacheKey(hash, sourceLang, targetLang string) string {
	return hash + ":" + sourceLang + ":" + targetLang
}

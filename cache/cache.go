// Package cache provides translation caching implementations.
//
// Keys follow the engine's layout of text hash plus language pair
// (hash:source:target), so the same string cached for one pair never
// shadows another.
package cache

// TranslationCache stores finished translations keyed by hashed text and
// language pair.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false
	// when the key is absent or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache.
	Set(key string, value string) error
}

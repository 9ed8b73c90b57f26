package idiomate

import "testing"

func TestHashText(t *testing.T) {
	h1 := HashText("piece of cake")
	h2 := HashText("  piece of cake  ") // trimmed before hashing
	h3 := HashText("piece of chalk")

	if h1 != h2 {
		t.Error("hash must ignore surrounding whitespace")
	}
	if h1 == h3 {
		t.Error("different texts must hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("abc123", "eng_Latn", "hin_Deva")
	expected := "abc123:eng_Latn:hin_Deva"
	if key != expected {
		t.Errorf("CacheKey = %q, want %q", key, expected)
	}

	// Reversed language pairs must produce distinct keys.
	if key == CacheKey("abc123", "hin_Deva", "eng_Latn") {
		t.Error("cache keys must distinguish translation direction")
	}
}

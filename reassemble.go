package idiomate

import (
	"strings"
	"unicode/utf8"
)

// joinPunctuation is the punctuation set that suppresses an inserted space
// at a segment boundary for Latin-script targets.
const joinPunctuation = ".,!?;:"

// JoinSegments joins translated segment texts back into one string.
//
// Latin-script targets suppress the inserted space when either boundary
// character is punctuation, so "word ." artifacts are not produced. Other
// targets use simple single-space joining between non-empty parts. The
// result is trimmed of leading and trailing whitespace.
func JoinSegments(parts []string, targetLang string, langs *LanguageTable) string {
	if len(parts) == 0 {
		return ""
	}

	smart := langs != nil && langs.LatinSpacing(targetLang)

	var b strings.Builder
	b.WriteString(parts[0])
	last := parts[0]

	for _, part := range parts[1:] {
		if last != "" && part != "" {
			if !smart || !boundaryPunctuation(last, part) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(part)
		if part != "" {
			last = part
		}
	}

	return strings.TrimSpace(b.String())
}

// boundaryPunctuation reports whether the trailing rune of left or the
// leading rune of right belongs to the join punctuation set.
func boundaryPunctuation(left, right string) bool {
	trailing, _ := utf8.DecodeLastRuneInString(left)
	leading, _ := utf8.DecodeRuneInString(right)
	return strings.ContainsRune(joinPunctuation, trailing) ||
		strings.ContainsRune(joinPunctuation, leading)
}

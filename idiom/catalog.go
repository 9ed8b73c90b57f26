// Package idiom provides idiom pattern catalogs and context-validated
// idiom detection.
package idiom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/contextbridge/idiomate"
)

// Pattern is one surface-form matcher for an idiom. A single canonical
// form may be covered by several patterns (morphological variants), but
// within one language every pattern maps to exactly one canonical form.
type Pattern struct {
	re        *regexp.Regexp
	canonical string
}

// Canonical returns the canonical idiom form this pattern recognizes.
func (p Pattern) Canonical() string { return p.canonical }

// compilePattern compiles a case-insensitive matcher.
func compilePattern(expr, canonical string) (Pattern, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("compiling idiom pattern for %q: %w", canonical, err)
	}
	return Pattern{re: re, canonical: canonical}, nil
}

// Window is the textual context around a pattern match: up to ten words on
// each side plus the matched text itself.
type Window struct {
	Before []string // Up to 10 words before the match
	After  []string // Up to 10 words after the match
	Match  string   // The literal matched text
}

// NextWord returns the first word after the match, lowercased and stripped
// of surrounding punctuation, or "" at end of text.
func (w Window) NextWord() string {
	if len(w.After) == 0 {
		return ""
	}
	return normalizeWord(w.After[0])
}

// Contains reports whether any of the given words appears in the window,
// including inside the matched text.
func (w Window) Contains(words ...string) bool {
	for _, candidate := range w.words() {
		for _, word := range words {
			if candidate == word {
				return true
			}
		}
	}
	return false
}

func (w Window) words() []string {
	all := make([]string, 0, len(w.Before)+len(w.After)+4)
	for _, word := range w.Before {
		all = append(all, normalizeWord(word))
	}
	for _, word := range strings.Fields(w.Match) {
		all = append(all, normalizeWord(word))
	}
	for _, word := range w.After {
		all = append(all, normalizeWord(word))
	}
	return all
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.Trim(word, ".,!?;:'\""))
}

// Validator decides whether a matched occurrence is truly idiomatic given
// its context. Returning false rejects the match as literal usage.
// Validators are keyed by canonical idiom form; idioms without a validator
// default to accept.
type Validator func(w Window) bool

// RejectNextWord builds a validator that rejects the match when the word
// immediately following it is one of the given words. Used for idioms
// built around a color or object word, where a trailing noun signals
// literal usage ("out of the blue tub").
func RejectNextWord(words ...string) Validator {
	return func(w Window) bool {
		next := w.NextWord()
		for _, word := range words {
			if next == word {
				return false
			}
		}
		return true
	}
}

// RejectNearby builds a validator that rejects the match when any of the
// given words appears in the context window. Used for idioms built around
// a food or material, where surrounding preparation or property terms
// signal literal usage ("a piece of chocolate cake").
func RejectNearby(words ...string) Validator {
	return func(w Window) bool {
		return !w.Contains(words...)
	}
}

// Catalog holds per-language idiom pattern sets and per-idiom context
// validators. A catalog is populated once at startup and read-only
// afterwards, safe for unsynchronized concurrent reads.
type Catalog struct {
	patterns   map[string][]Pattern
	validators map[string]Validator
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		patterns:   make(map[string][]Pattern),
		validators: make(map[string]Validator),
	}
}

// AddPattern registers a surface-form matcher for a language. The
// expression is compiled case-insensitively.
func (c *Catalog) AddPattern(lang, expr, canonical string) error {
	p, err := compilePattern(expr, canonical)
	if err != nil {
		return err
	}
	c.patterns[lang] = append(c.patterns[lang], p)
	return nil
}

// SetValidator attaches a context validator to a canonical idiom form.
func (c *Catalog) SetValidator(canonical string, v Validator) {
	c.validators[canonical] = v
}

// Patterns returns the pattern set for a canonical language code.
func (c *Catalog) Patterns(lang string) []Pattern {
	return c.patterns[lang]
}

// Languages returns the canonical language codes with registered patterns.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.patterns))
	for lang := range c.patterns {
		langs = append(langs, lang)
	}
	return langs
}

// validate runs the idiom's context validator, defaulting to accept.
func (c *Catalog) validate(canonical string, w Window) bool {
	if v, ok := c.validators[canonical]; ok {
		return v(w)
	}
	return true
}

// contextWindow builds the validation window for a match inside text.
func contextWindow(text string, span idiomate.Span) Window {
	before := strings.Fields(text[:span.Start])
	if len(before) > contextWords {
		before = before[len(before)-contextWords:]
	}
	after := strings.Fields(text[span.End:])
	if len(after) > contextWords {
		after = after[:contextWords]
	}
	return Window{Before: before, After: after, Match: span.Text}
}

// contextWords is how many words on each side of a match the validators see.
const contextWords = 10

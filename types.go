package idiomate

// Script classifies the dominant writing system of a piece of text.
type Script string

const (
	// ScriptLatin covers Latin-script letters.
	ScriptLatin Script = "Latin"
	// ScriptDevanagari covers the Devanagari block (Hindi, Marathi, ...).
	ScriptDevanagari Script = "Devanagari"
	// ScriptTelugu covers the Telugu block.
	ScriptTelugu Script = "Telugu"
	// ScriptMixed means no single script exceeds 50% of alphabetic runes.
	ScriptMixed Script = "Mixed"
	// ScriptUnknown means the text has no alphabetic runes, or the
	// language's script is not registered. Validation treats it as a pass.
	ScriptUnknown Script = "Unknown"
)

// Strategy identifies how a segment's translation was produced.
type Strategy string

const (
	// StrategyCurated means a human-authored idiom translation was used.
	StrategyCurated Strategy = "curated"
	// StrategyNeuralUnit means the idiom's canonical form was sent to the
	// neural provider as one unit.
	StrategyNeuralUnit Strategy = "neural-as-unit"
	// StrategyNeuralPlain means plain text was sent to the neural provider.
	StrategyNeuralPlain Strategy = "neural-plain"
	// StrategyFailed means the provider call for this segment failed and
	// the segment degraded to empty text.
	StrategyFailed Strategy = "failed"
)

// Span is one detected idiom occurrence in the source text.
type Span struct {
	Canonical string `json:"canonical"` // Canonical idiom form (e.g., "break the ice")
	Start     int    `json:"start"`     // Byte offset of the match start
	End       int    `json:"end"`       // Byte offset just past the match end
	Text      string `json:"text"`      // Literal matched substring
}

// Len returns the byte length of the matched substring.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether two spans share any byte range.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// SegmentKind tags a segment as plain text or an idiom occurrence.
type SegmentKind string

const (
	// SegmentPlain is a raw run of non-idiomatic text.
	SegmentPlain SegmentKind = "plain"
	// SegmentIdiom is a detected idiom occurrence.
	SegmentIdiom SegmentKind = "idiom"
)

// Segment is the atomic unit of translation dispatch.
type Segment struct {
	Kind      SegmentKind
	Text      string // Literal content (trimmed for interior plain segments)
	Canonical string // Canonical idiom form; empty for plain segments
}

// CuratedKey identifies one curated idiom translation.
type CuratedKey struct {
	Canonical  string // Canonical idiom form
	SourceLang string // Canonical source language code
	TargetLang string // Canonical target language code
}

// CuratedTable maps idiom/language-pair keys to fixed human-authored
// translations. It is loaded once at startup, never mutated afterwards,
// and safe for unsynchronized concurrent reads.
type CuratedTable map[CuratedKey]string

// Lookup returns the curated translation for an idiom and language pair.
func (t CuratedTable) Lookup(canonical, sourceLang, targetLang string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t[CuratedKey{Canonical: canonical, SourceLang: sourceLang, TargetLang: targetLang}]
	return v, ok
}

// IdiomRecord reports how one idiom segment was translated.
type IdiomRecord struct {
	Original    string   `json:"original"`    // Literal matched text
	Canonical   string   `json:"canonical"`   // Canonical idiom form
	Translation string   `json:"translation"` // Produced translation (empty on failure)
	Strategy    Strategy `json:"strategy"`    // Which path produced it
}

// Method identifies which pipeline produced a Result.
type Method string

const (
	// MethodDirect means the whole text went through plain-mode translation.
	MethodDirect Method = "direct"
	// MethodContextual means the text went through the idiom-aware pipeline.
	MethodContextual Method = "contextual"
)

// Result is the outcome of one translation request.
type Result struct {
	Text         string        // Translated text
	UsedFallback bool          // Whether the script-mismatch fallback retry fired
	Method       Method        // Which pipeline produced the result
	Idioms       []IdiomRecord // Per-idiom outcomes (contextual mode)
	SegmentCount int           // Number of segments dispatched (contextual mode)
}

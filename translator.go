package idiomate

import (
	"context"
	"log/slog"
)

// Provider is the interface for the external translation capability. It
// has no idiom awareness of its own; each call is independent and safe to
// issue repeatedly.
type Provider interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// Request contains the parameters for one translation call.
type Request struct {
	Text       string
	SourceLang string // Canonical language code
	TargetLang string // Canonical language code
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// IdiomDetector locates idiom occurrences in text. Implementations must
// return spans sorted by start offset and pairwise non-overlapping.
type IdiomDetector interface {
	Detect(text, lang string) []Span
}

// Translator is the main translation engine. It validates plain-mode
// output against the target language's expected script and drives the
// idiom-aware contextual pipeline.
type Translator struct {
	provider Provider
	cache    TranslationCache
	detector IdiomDetector
	curated  CuratedTable
	langs    *LanguageTable
	logger   *slog.Logger
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithDetector sets the idiom detector used by contextual mode.
func WithDetector(detector IdiomDetector) TranslatorOption {
	return func(t *Translator) {
		t.detector = detector
	}
}

// WithCuratedTable sets the curated idiom translation table.
func WithCuratedTable(table CuratedTable) TranslatorOption {
	return func(t *Translator) {
		t.curated = table
	}
}

// WithLanguageTable replaces the built-in language configuration.
func WithLanguageTable(langs *LanguageTable) TranslatorOption {
	return func(t *Translator) {
		t.langs = langs
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// NewTranslator creates a new Translator with the given provider.
func NewTranslator(provider Provider, opts ...TranslatorOption) *Translator {
	t := &Translator{
		provider: provider,
		langs:    DefaultLanguageTable(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate translates text in plain mode: one provider call, script
// validation of the output, and at most one fallback retry when the
// output's script does not match the target language's expected script.
func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (*Result, error) {
	src, tgt, err := t.normalizePair(sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	if t.provider == nil {
		return nil, ErrProviderUnavailable
	}

	translated, usedFallback, err := t.translateValidated(ctx, text, src, tgt)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:         translated,
		UsedFallback: usedFallback,
		Method:       MethodDirect,
	}, nil
}

// TranslateContextual translates text with idiom awareness: detected
// idioms are dispatched through curated lookup or translated as whole
// units, the remaining text is translated plainly, and the pieces are
// rejoined with target-language spacing rules. The reassembled output is
// not re-validated for script; when no idioms are detected the request
// delegates to the validated plain path.
func (t *Translator) TranslateContextual(ctx context.Context, text, sourceLang, targetLang string) (*Result, error) {
	src, tgt, err := t.normalizePair(sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	if t.provider == nil {
		return nil, ErrProviderUnavailable
	}

	var spans []Span
	if t.detector != nil {
		spans = t.detector.Detect(text, src)
	}

	if len(spans) == 0 {
		t.logger.Debug("no idioms detected, translating directly",
			"source", src, "target", tgt)
		translated, usedFallback, err := t.translateValidated(ctx, text, src, tgt)
		if err != nil {
			return nil, err
		}
		return &Result{
			Text:         translated,
			UsedFallback: usedFallback,
			Method:       MethodDirect,
		}, nil
	}

	t.logger.Debug("idioms detected", "count", len(spans),
		"source", src, "target", tgt)

	segments := SegmentText(text, spans)
	parts := make([]string, 0, len(segments))
	var records []IdiomRecord

	for _, seg := range segments {
		translated, strategy, err := t.translateSegment(ctx, seg, src, tgt)
		if err != nil {
			// A failed segment degrades to empty text rather than
			// aborting the whole sentence.
			t.logger.Warn("segment translation failed, substituting empty text",
				"kind", seg.Kind, "error", err)
			translated = ""
		}
		parts = append(parts, translated)

		if seg.Kind == SegmentIdiom {
			records = append(records, IdiomRecord{
				Original:    seg.Text,
				Canonical:   seg.Canonical,
				Translation: translated,
				Strategy:    strategy,
			})
		}
	}

	return &Result{
		Text:         JoinSegments(parts, tgt, t.langs),
		Method:       MethodContextual,
		Idioms:       records,
		SegmentCount: len(segments),
	}, nil
}

// translateValidated performs one provider call, classifies the output
// script, and retries once through the detected actual language when the
// script does not match the target's expected script. The bool result
// reports whether the fallback retry fired. Never issues more than two
// provider calls.
func (t *Translator) translateValidated(ctx context.Context, text, src, tgt string) (string, bool, error) {
	out, err := t.translateCached(ctx, text, src, tgt)
	if err != nil {
		return "", false, err
	}

	expected := t.langs.ExpectedScript(tgt)
	if expected == ScriptUnknown {
		return out, false, nil
	}

	actual := ClassifyScript(out)
	if actual == expected {
		return out, false, nil
	}

	t.logger.Warn("translation produced wrong script",
		"expected", expected, "actual", actual, "target", tgt)

	detected := t.langs.LanguageForScript(actual)
	if detected == "" || detected == tgt {
		// Nothing actionable to retry.
		return out, false, nil
	}

	t.logger.Info("retrying through fallback path",
		"from", detected, "to", tgt)

	retried, err := t.translateCached(ctx, out, detected, tgt)
	if err != nil {
		return "", false, err
	}

	// A best-effort retry result is preferred over the original
	// wrong-script output even if its script still mismatches.
	if s := ClassifyScript(retried); s != expected {
		t.logger.Warn("fallback result still in wrong script", "script", s)
	}
	return retried, true, nil
}

// translateCached wraps a provider call with the optional cache. Cache
// write failures are ignored; a cached value skips the provider entirely.
func (t *Translator) translateCached(ctx context.Context, text, src, tgt string) (string, error) {
	var key string
	if t.cache != nil {
		key = CacheKey(HashText(text), src, tgt)
		if cached, ok := t.cache.Get(key); ok {
			return cached, nil
		}
	}

	out, err := t.provider.Translate(ctx, Request{
		Text:       text,
		SourceLang: src,
		TargetLang: tgt,
	})
	if err != nil {
		return "", err
	}

	if t.cache != nil {
		_ = t.cache.Set(key, out)
	}
	return out, nil
}

// normalizePair resolves both language codes to canonical form.
func (t *Translator) normalizePair(sourceLang, targetLang string) (string, string, error) {
	src, err := t.langs.Normalize(sourceLang)
	if err != nil {
		return "", "", err
	}
	tgt, err := t.langs.Normalize(targetLang)
	if err != nil {
		return "", "", err
	}
	return src, tgt, nil
}

// Languages returns the language configuration in use.
func (t *Translator) Languages() *LanguageTable {
	return t.langs
}

// Curated returns the curated idiom translation table.
func (t *Translator) Curated() CuratedTable {
	return t.curated
}

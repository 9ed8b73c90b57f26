package idiomate

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockProvider is a deterministic provider stub for testing.
type mockProvider struct {
	translations map[string]string
	err          error
	callCount    int
	requests     []Request
}

func newMockProvider() *mockProvider {
	return &mockProvider{translations: make(map[string]string)}
}

func (m *mockProvider) Translate(ctx context.Context, req Request) (string, error) {
	m.callCount++
	m.requests = append(m.requests, req)

	if m.err != nil {
		return "", m.err
	}
	if translation, ok := m.translations[req.Text]; ok {
		return translation, nil
	}
	return "[" + req.Text + "]", nil
}

// mockCache is a simple map-backed cache for testing.
type mockCache struct {
	data map[string]string
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (c *mockCache) Get(key string) (string, bool) {
	val, ok := c.data[key]
	return val, ok
}

func (c *mockCache) Set(key string, value string) error {
	c.data[key] = value
	return nil
}

// stubDetector returns a fixed span set for any input.
type stubDetector struct {
	spans []Span
}

func (d *stubDetector) Detect(text, lang string) []Span {
	return d.spans
}

func TestTranslator_PlainAccepted(t *testing.T) {
	provider := newMockProvider()
	provider.translations["Hello"] = "नमस्ते"

	translator := NewTranslator(provider)

	result, err := translator.Translate(context.Background(), "Hello", "eng", "hin")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if result.Text != "नमस्ते" {
		t.Errorf("expected Devanagari output, got %q", result.Text)
	}
	if result.UsedFallback {
		t.Error("fallback must not fire when output script matches")
	}
	if result.Method != MethodDirect {
		t.Errorf("expected method %q, got %q", MethodDirect, result.Method)
	}
	if provider.callCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.callCount)
	}
}

func TestTranslator_FallbackRetry(t *testing.T) {
	provider := newMockProvider()
	// First call produces Devanagari text for a Latin target; the retry
	// translates that wrong-script output into Latin.
	provider.translations["नमस्ते"] = "नमस्ते दुनिया"
	provider.translations["नमस्ते दुनिया"] = "hello world"

	translator := NewTranslator(provider)

	result, err := translator.Translate(context.Background(), "नमस्ते", "hin", "eng")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if !result.UsedFallback {
		t.Error("expected fallback flag to be set")
	}
	if result.Text != "hello world" {
		t.Errorf("expected retried translation, got %q", result.Text)
	}
	if provider.callCount != 2 {
		t.Errorf("expected exactly 2 provider calls, got %d", provider.callCount)
	}

	retry := provider.requests[1]
	if retry.SourceLang != "hin_Deva" {
		t.Errorf("retry must translate from the script-implied language, got %q", retry.SourceLang)
	}
	if retry.TargetLang != "eng_Latn" {
		t.Errorf("retry must keep the original target, got %q", retry.TargetLang)
	}
	if retry.Text != "नमस्ते दुनिया" {
		t.Errorf("retry must translate the wrong-script output, got %q", retry.Text)
	}
}

func TestTranslator_FallbackBounded(t *testing.T) {
	provider := newMockProvider()
	// Both calls produce Devanagari for a Latin target; the best-effort
	// retry result is still returned and no third call is issued.
	provider.translations["x"] = "नमस्ते"
	provider.translations["नमस्ते"] = "फिर से नमस्ते"

	translator := NewTranslator(provider)

	result, err := translator.Translate(context.Background(), "x", "eng", "eng")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if provider.callCount != 2 {
		t.Errorf("plain mode must never exceed 2 provider calls, got %d", provider.callCount)
	}
	if !result.UsedFallback {
		t.Error("expected fallback flag even when retry script still mismatches")
	}
	if result.Text != "फिर से नमस्ते" {
		t.Errorf("expected best-effort retry output, got %q", result.Text)
	}
}

func TestTranslator_NoReverseMapping(t *testing.T) {
	provider := newMockProvider()
	// Mixed-script output has no script-implied language to retry from.
	provider.translations["Hello"] = "abcd कखगघ"

	translator := NewTranslator(provider)

	result, err := translator.Translate(context.Background(), "Hello", "eng", "hin")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if result.UsedFallback {
		t.Error("fallback must not fire without a reverse mapping")
	}
	if result.Text != "abcd कखगघ" {
		t.Errorf("expected original output unmodified, got %q", result.Text)
	}
	if provider.callCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.callCount)
	}
}

func TestTranslator_ReverseMappingEqualsTarget(t *testing.T) {
	provider := newMockProvider()
	// Force a mismatch whose implied language equals the target: make
	// hin_Deva expect Telugu, then return Devanagari output.
	langs := DefaultLanguageTable()
	langs.Scripts["hin_Deva"] = ScriptTelugu
	provider.translations["Hello"] = "नमस्ते"

	translator := NewTranslator(provider, WithLanguageTable(langs))

	result, err := translator.Translate(context.Background(), "Hello", "eng", "hin")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	// Detected Devanagari implies hin_Deva, which equals the target:
	// nothing actionable to retry.
	if result.UsedFallback {
		t.Error("fallback must not fire when the implied language equals the target")
	}
	if provider.callCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.callCount)
	}
}

func TestTranslator_SkipValidationForUnknownScript(t *testing.T) {
	provider := newMockProvider()
	provider.translations["Hello"] = "你好"

	translator := NewTranslator(provider)

	// zho_Hans is registered with no classified script: validation is
	// skipped and the output accepted as-is.
	result, err := translator.Translate(context.Background(), "Hello", "eng", "zh")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.UsedFallback {
		t.Error("fallback must not fire when expected script is unknown")
	}
	if provider.callCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.callCount)
	}
}

func TestTranslator_UnknownLanguage(t *testing.T) {
	provider := newMockProvider()
	translator := NewTranslator(provider)

	_, err := translator.Translate(context.Background(), "Hello", "eng", "xx_Fake")
	if err == nil {
		t.Fatal("expected error for unknown target language")
	}

	var unknownErr *UnknownLanguageError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLanguageError, got %T", err)
	}
	if provider.callCount != 0 {
		t.Errorf("no provider calls may be made for unknown languages, got %d", provider.callCount)
	}
}

func TestTranslator_ProviderUnavailable(t *testing.T) {
	translator := NewTranslator(nil)

	_, err := translator.Translate(context.Background(), "Hello", "eng", "hin")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	_, err = translator.TranslateContextual(context.Background(), "Hello", "eng", "hin")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable in contextual mode, got %v", err)
	}
}

func TestTranslator_PlainModeError(t *testing.T) {
	provider := newMockProvider()
	provider.err = &ProviderError{Message: "model offline"}

	translator := NewTranslator(provider)

	_, err := translator.Translate(context.Background(), "Hello", "eng", "hin")
	if err == nil {
		t.Fatal("expected provider failure to surface in plain mode")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
}

func TestTranslator_CacheSkipsProvider(t *testing.T) {
	provider := newMockProvider()
	provider.translations["Hello"] = "नमस्ते"

	translator := NewTranslator(provider, WithCache(newMockCache()))

	for i := 0; i < 3; i++ {
		result, err := translator.Translate(context.Background(), "Hello", "eng", "hin")
		if err != nil {
			t.Fatalf("Translate failed: %v", err)
		}
		if result.Text != "नमस्ते" {
			t.Errorf("expected cached translation, got %q", result.Text)
		}
	}

	if provider.callCount != 1 {
		t.Errorf("repeated identical requests must hit the cache, got %d calls", provider.callCount)
	}
}

func TestTranslator_ContextualCuratedPrecedence(t *testing.T) {
	provider := newMockProvider()
	curated := CuratedTable{
		{Canonical: "piece of cake", SourceLang: "eng_Latn", TargetLang: "hin_Deva"}: "बहुत आसान",
	}
	detector := &stubDetector{spans: []Span{
		{Canonical: "piece of cake", Start: 0, End: 13, Text: "piece of cake"},
	}}

	translator := NewTranslator(provider,
		WithDetector(detector),
		WithCuratedTable(curated),
	)

	result, err := translator.TranslateContextual(context.Background(), "piece of cake", "eng", "hin")
	if err != nil {
		t.Fatalf("TranslateContextual failed: %v", err)
	}

	if result.Text != "बहुत आसान" {
		t.Errorf("expected curated translation, got %q", result.Text)
	}
	if provider.callCount != 0 {
		t.Errorf("curated lookup must never invoke the provider, got %d calls", provider.callCount)
	}
	if len(result.Idioms) != 1 {
		t.Fatalf("expected 1 idiom record, got %d", len(result.Idioms))
	}
	if result.Idioms[0].Strategy != StrategyCurated {
		t.Errorf("expected strategy %q, got %q", StrategyCurated, result.Idioms[0].Strategy)
	}
	if result.Method != MethodContextual {
		t.Errorf("expected method %q, got %q", MethodContextual, result.Method)
	}
}

func TestTranslator_ContextualNeuralAsUnit(t *testing.T) {
	provider := newMockProvider()
	provider.translations["jump the gun"] = "जल्दबाज़ी करना"

	detector := &stubDetector{spans: []Span{
		{Canonical: "jump the gun", Start: 0, End: 15, Text: "jumped the gun."},
	}}

	translator := NewTranslator(provider, WithDetector(detector))

	result, err := translator.TranslateContextual(context.Background(), "jumped the gun.", "eng", "hin")
	if err != nil {
		t.Fatalf("TranslateContextual failed: %v", err)
	}

	// The canonical form, not the literal match, goes to the provider.
	if provider.requests[0].Text != "jump the gun" {
		t.Errorf("expected canonical form sent to provider, got %q", provider.requests[0].Text)
	}
	if result.Idioms[0].Strategy != StrategyNeuralUnit {
		t.Errorf("expected strategy %q, got %q", StrategyNeuralUnit, result.Idioms[0].Strategy)
	}
	if result.Idioms[0].Original != "jumped the gun." {
		t.Errorf("record must keep the literal match, got %q", result.Idioms[0].Original)
	}
}

func TestTranslator_ContextualMixedSegments(t *testing.T) {
	provider := newMockProvider()
	curated := CuratedTable{
		{Canonical: "break the ice", SourceLang: "eng_Latn", TargetLang: "hin_Deva"}: "बातचीत शुरू करना",
	}
	text := "We need to break the ice at the meeting"
	detector := &stubDetector{spans: []Span{
		{Canonical: "break the ice", Start: 11, End: 24, Text: "break the ice"},
	}}

	translator := NewTranslator(provider,
		WithDetector(detector),
		WithCuratedTable(curated),
	)

	result, err := translator.TranslateContextual(context.Background(), text, "eng", "hin")
	if err != nil {
		t.Fatalf("TranslateContextual failed: %v", err)
	}

	if result.SegmentCount != 3 {
		t.Errorf("expected 3 segments, got %d", result.SegmentCount)
	}
	if !strings.Contains(result.Text, "बातचीत शुरू करना") {
		t.Errorf("expected curated idiom in output, got %q", result.Text)
	}
	// Both plain segments went through the provider; the idiom did not.
	if provider.callCount != 2 {
		t.Errorf("expected 2 provider calls for plain segments, got %d", provider.callCount)
	}
	expected := "[We need to] बातचीत शुरू करना [at the meeting]"
	if result.Text != expected {
		t.Errorf("expected %q, got %q", expected, result.Text)
	}
}

func TestTranslator_ContextualSegmentFailureDegrades(t *testing.T) {
	provider := newMockProvider()
	provider.err = &ProviderError{Message: "model offline"}

	curated := CuratedTable{
		{Canonical: "break the ice", SourceLang: "eng_Latn", TargetLang: "hin_Deva"}: "बातचीत शुरू करना",
	}
	text := "We need to break the ice at the meeting"
	detector := &stubDetector{spans: []Span{
		{Canonical: "break the ice", Start: 11, End: 24, Text: "break the ice"},
	}}

	translator := NewTranslator(provider,
		WithDetector(detector),
		WithCuratedTable(curated),
	)

	result, err := translator.TranslateContextual(context.Background(), text, "eng", "hin")
	if err != nil {
		t.Fatalf("segment failures must not abort the request: %v", err)
	}

	// Plain segments degraded to empty text; the curated idiom survived.
	if result.Text != "बातचीत शुरू करना" {
		t.Errorf("expected only the curated idiom, got %q", result.Text)
	}
}

func TestTranslator_ContextualIdiomFailureRecorded(t *testing.T) {
	provider := newMockProvider()
	provider.err = &ProviderError{Message: "model offline"}

	detector := &stubDetector{spans: []Span{
		{Canonical: "jump the gun", Start: 0, End: 12, Text: "jump the gun"},
	}}

	translator := NewTranslator(provider, WithDetector(detector))

	result, err := translator.TranslateContextual(context.Background(), "jump the gun", "eng", "hin")
	if err != nil {
		t.Fatalf("segment failures must not abort the request: %v", err)
	}

	if len(result.Idioms) != 1 {
		t.Fatalf("expected 1 idiom record, got %d", len(result.Idioms))
	}
	if result.Idioms[0].Strategy != StrategyFailed {
		t.Errorf("expected strategy %q, got %q", StrategyFailed, result.Idioms[0].Strategy)
	}
	if result.Idioms[0].Translation != "" {
		t.Errorf("failed idiom must degrade to empty text, got %q", result.Idioms[0].Translation)
	}
}

func TestTranslator_ContextualNoIdiomsDelegates(t *testing.T) {
	provider := newMockProvider()
	provider.translations["See you at noon"] = "दोपहर में मिलते हैं"

	translator := NewTranslator(provider, WithDetector(&stubDetector{}))

	result, err := translator.TranslateContextual(context.Background(), "See you at noon", "eng", "hin")
	if err != nil {
		t.Fatalf("TranslateContextual failed: %v", err)
	}

	if result.Method != MethodDirect {
		t.Errorf("zero idioms must delegate to the direct path, got %q", result.Method)
	}
	if result.Text != "दोपहर में मिलते हैं" {
		t.Errorf("unexpected output %q", result.Text)
	}
	if len(result.Idioms) != 0 {
		t.Errorf("expected no idiom records, got %d", len(result.Idioms))
	}
}

func TestTranslator_ContextualNoDetector(t *testing.T) {
	provider := newMockProvider()
	provider.translations["Hello"] = "नमस्ते"

	// Without a detector, contextual mode behaves like the direct path.
	translator := NewTranslator(provider)

	result, err := translator.TranslateContextual(context.Background(), "Hello", "eng", "hin")
	if err != nil {
		t.Fatalf("TranslateContextual failed: %v", err)
	}
	if result.Method != MethodDirect {
		t.Errorf("expected method %q, got %q", MethodDirect, result.Method)
	}
}

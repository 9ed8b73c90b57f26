package provider

import (
	"context"
	"fmt"
)

// MockProvider is a deterministic stub provider for testing.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	CallCount    int               // Number of times Translate was called
	LastRequest  *Request          // Last request received
	Err          error             // Error to return, if set
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"break the ice":   "बातचीत शुरू करना",
			"piece of cake":   "बहुत आसान",
			"Hello":           "नमस्ते",
			"See you at noon": "दोपहर में मिलते हैं",
		},
	}
}

// Translate returns mock translations. Unknown texts come back bracketed,
// which keeps the output distinguishable in assertions.
func (m *MockProvider) Translate(ctx context.Context, req Request) (string, error) {
	m.CallCount++
	reqCopy := req
	m.LastRequest = &reqCopy

	if m.Err != nil {
		return "", m.Err
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s]", req.Text), nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)

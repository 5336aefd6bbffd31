// Package llm provides the LLM client abstraction and configuration.
// The recommendation orchestrator is the only consumer today; the interface
// leaves room for other providers without touching callers.
package llm

import "os"

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration. GEMINI_MODEL overrides
// the model name.
func DefaultConfig() *Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Config{
		Provider: ProviderGemini,
		Model:    model,
	}
}

// IsConfigured reports whether LLM credentials are present in the
// environment. When false the recommendation path runs fallback-only.
func IsConfigured() bool {
	return os.Getenv("GEMINI_API_KEY") != ""
}

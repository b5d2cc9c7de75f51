package llm

import "context"

// Provider defines the interface for LLM-backed morphological generation.
// It is the fallback for words the dictionary morphologies do not cover,
// mainly in inflection-heavy languages without a bundled form table.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Inflect produces the surface form of a word in the requested
	// grammatical case for the given language.
	Inflect(ctx context.Context, req InflectRequest) (*InflectResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// InflectRequest contains the input for one inflection.
type InflectRequest struct {
	// Word is the nominative surface form to inflect.
	Word string

	// Case is the requested grammatical case, e.g. "genitive".
	Case string

	// Language is the ISO 639-1 code of the document language.
	Language string

	// Model overrides the configured model for this request.
	Model string
}

// InflectResponse contains the provider's answer.
type InflectResponse struct {
	// Inflected is the produced surface form.
	Inflected string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 32,
	}
}

const inflectSystemPrompt = "You are a morphological realizer. Answer with the " +
	"requested inflected word form only: no punctuation, no quotes, no explanation."

// BuildPrompt constructs the inflection prompt.
func BuildPrompt(req InflectRequest) string {
	return "Language: " + req.Language + "\n" +
		"Word: " + req.Word + "\n" +
		"Inflect the word into the " + req.Case + " case. Reply with the inflected form only."
}

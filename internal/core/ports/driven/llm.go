package driven

import "context"

// LLMService provides hosted completion for answer generation.
//
// Implementations may include:
//   - Groq (llama3 family)
//   - OpenAI-compatible chat completion APIs
type LLMService interface {
	// Generate produces a text completion from a prompt. The adapter
	// performs no retries; transport and API failures propagate to the
	// caller as-is.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness. The answer pipeline always sets
	// 0 so identical (context, question) pairs produce byte-identical
	// output; fallback detection depends on it. Adapters must send the
	// value explicitly rather than omitting it.
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}

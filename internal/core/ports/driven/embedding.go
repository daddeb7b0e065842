package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Embeddings are unit-normalised by the adapter so that the vector
// index can use a plain dot product as cosine similarity.
//
// The same model configuration MUST be used at index build time and at
// query time. A mismatch is not detectable at runtime beyond the
// fingerprint check at index load; it silently poisons every similarity
// score.
//
// Implementations may include:
//   - OpenAI-compatible inference servers (text-embeddings-inference, vLLM)
//   - Ollama (nomic-embed-text, all-minilm)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768).
	// This must match the VectorIndex dimensionality.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

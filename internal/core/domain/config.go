package domain

import "fmt"

// Default pipeline tuning values. K controls recall breadth fed to the
// reranker; TopN controls how many chunks reach the generator.
const (
	DefaultRetrievalK = 20
	DefaultRerankTopN = 5

	DefaultEmbeddingModel = "BAAI/bge-small-en-v1.5"
	DefaultRerankerModel  = "rerank-english-v3.0"
	DefaultGeneratorModel = "llama3-70b-8192"
)

// Config is the immutable pipeline configuration. It is built once at
// startup (from file and environment) and passed explicitly into
// constructors; nothing in the core reads configuration from globals.
type Config struct {
	// EmbeddingModel is the embedding model identifier. It must match
	// the model the index artifact was built with; the artifact records
	// a fingerprint that is checked at load time.
	EmbeddingModel string

	// RerankerModel is the cross-encoder model identifier.
	RerankerModel string

	// GeneratorModel is the completion model identifier.
	GeneratorModel string

	// RetrievalK is how many candidates first-pass similarity search
	// returns for reranking.
	RetrievalK int

	// RerankTopN is how many reranked chunks are assembled into the
	// generation context.
	RerankTopN int

	// IndexPath is the location of the persisted vector index artifact.
	IndexPath string

	// DataDir is the directory holding the chunk store database.
	DataDir string
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.RetrievalK <= 0 {
		return fmt.Errorf("%w: retrieval K must be positive, got %d", ErrInvalidInput, c.RetrievalK)
	}
	if c.RerankTopN <= 0 {
		return fmt.Errorf("%w: rerank top-N must be positive, got %d", ErrInvalidInput, c.RerankTopN)
	}
	if c.RerankTopN > c.RetrievalK {
		return fmt.Errorf("%w: rerank top-N (%d) exceeds retrieval K (%d)", ErrInvalidInput, c.RerankTopN, c.RetrievalK)
	}
	if c.IndexPath == "" {
		return fmt.Errorf("%w: index path is required", ErrInvalidInput)
	}
	return nil
}

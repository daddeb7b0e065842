package driven

import "context"

// VectorIndex provides similarity search over the persisted chunk
// embeddings. The index is built once offline, loaded read-only at
// process start, and never mutated at query time, so concurrent reads
// need no locking.
type VectorIndex interface {
	// Search finds the k nearest neighbours to the query vector,
	// ordered by descending similarity. Returns at most k hits and
	// never more than the index contains.
	Search(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Size returns the number of vectors in the index.
	Size() int

	// Fingerprint returns the embedding model identifier recorded at
	// build time, used to validate compatibility at load.
	Fingerprint() string

	// Close releases resources.
	Close() error
}

// VectorHit represents a similarity search result.
type VectorHit struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// Similarity is the cosine similarity score (0-1 for unit vectors).
	Similarity float64
}

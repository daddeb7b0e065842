package driven

import (
	"context"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

// ChunkStore persists document chunks keyed by ID. The vector index
// stores only embeddings and chunk IDs; retrieval hydrates the chunk
// text through this store.
type ChunkStore interface {
	// GetChunk retrieves a chunk by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, error)

	// SaveChunks stores chunks produced by the offline index build.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
	"github.com/kaaval-labs/kaaval-cli/internal/logger"
)

// Retriever performs first-pass candidate retrieval: embed the query,
// search the vector index for the K nearest chunks, and hydrate the
// chunk text from the chunk store. It has no side effects; given a
// loaded index it is purely functional.
type Retriever struct {
	embedding  driven.EmbeddingService
	index      driven.VectorIndex
	chunkStore driven.ChunkStore
	k          int
}

// NewRetriever creates a retriever with a fixed K. K controls the
// recall breadth fed to the reranker, independent of how many chunks
// are ultimately used for generation.
func NewRetriever(
	embedding driven.EmbeddingService,
	index driven.VectorIndex,
	chunkStore driven.ChunkStore,
	k int,
) *Retriever {
	if k <= 0 {
		k = domain.DefaultRetrievalK
	}
	return &Retriever{
		embedding:  embedding,
		index:      index,
		chunkStore: chunkStore,
		k:          k,
	}
}

// K returns the configured recall breadth.
func (r *Retriever) K() int {
	return r.k
}

// Retrieve returns up to K candidates ordered by descending cosine
// similarity to the query.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]domain.Candidate, error) {
	if r.index == nil {
		return nil, domain.ErrIndexMissing
	}
	if r.embedding == nil {
		return nil, errors.New("embedding service unavailable")
	}
	if r.chunkStore == nil {
		return nil, errors.New("chunk store unavailable")
	}

	logger.Debug("Retrieval: embedding query (%d chars)", len(query))
	vec, err := r.embedding.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := r.index.Search(ctx, vec, r.k)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}
	logger.Debug("Retrieval: %d hits from index of %d vectors", len(hits), r.index.Size())

	candidates := make([]domain.Candidate, 0, len(hits))
	for _, hit := range hits {
		chunk, err := r.chunkStore.GetChunk(ctx, hit.ChunkID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Index and store disagree; skip rather than fail the query.
				logger.Warn("Retrieval: chunk %s in index but not in store", hit.ChunkID)
				continue
			}
			return nil, fmt.Errorf("get chunk %s: %w", hit.ChunkID, err)
		}
		candidates = append(candidates, domain.Candidate{
			Chunk:      *chunk,
			Similarity: hit.Similarity,
		})
	}

	return candidates, nil
}

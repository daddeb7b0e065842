package driven

import "context"

// RerankService scores (query, document) pairs with a cross-encoder
// model. Cross-encoders attend over the query and document together,
// so scores cannot be decomposed into separate embeddings; that is why
// a second pass over a small candidate set is worth the extra call.
//
// Implementations may include:
//   - Cohere /v1/rerank
//   - Jina AI reranker API
//   - text-embeddings-inference /rerank
type RerankService interface {
	// Score returns one relevance score per document, in input order.
	// The score space is model-specific and not comparable to
	// embedding similarity.
	Score(ctx context.Context, query string, documents []string) ([]float64, error)

	// ModelName returns the name of the reranker model being used.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

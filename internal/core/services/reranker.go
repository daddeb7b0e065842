package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
	"github.com/kaaval-labs/kaaval-cli/internal/logger"
)

// Reranker rescans first-pass candidates with a cross-encoder and
// keeps the top N. Embedding similarity is cheap but imprecise;
// spending one extra call on a K-sized set buys materially better
// precision in the handful of chunks the generator sees.
type Reranker struct {
	svc driven.RerankService
}

// NewReranker creates a reranker backed by the given scoring service.
func NewReranker(svc driven.RerankService) *Reranker {
	return &Reranker{svc: svc}
}

// Rerank scores each (query, chunk text) pair, sorts descending by
// relevance and truncates to min(topN, len(candidates)). The sort is
// stable: candidates with equal scores keep their input order.
func (r *Reranker) Rerank(
	ctx context.Context, query string, candidates []domain.Candidate, topN int,
) ([]domain.RankedCandidate, error) {
	if r.svc == nil {
		return nil, errors.New("rerank service unavailable")
	}
	if len(candidates) == 0 {
		return []domain.RankedCandidate{}, nil
	}
	if topN <= 0 {
		topN = domain.DefaultRerankTopN
	}

	docs := make([]string, len(candidates))
	for i := range candidates {
		docs[i] = candidates[i].Chunk.Text
	}

	scores, err := r.svc.Score(ctx, query, docs)
	if err != nil {
		return nil, fmt.Errorf("rerank score: %w", err)
	}
	if len(scores) != len(candidates) {
		return nil, fmt.Errorf("rerank score: got %d scores for %d candidates", len(scores), len(candidates))
	}

	ranked := make([]domain.RankedCandidate, len(candidates))
	for i := range candidates {
		ranked[i] = domain.RankedCandidate{
			Chunk:     candidates[i].Chunk,
			Relevance: scores[i],
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	logger.Debug("Rerank: kept %d of %d candidates", len(ranked), len(candidates))

	return ranked, nil
}

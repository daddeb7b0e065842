package services

import (
	"strings"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

// contextDelimiter separates chunks inside the assembled context block.
const contextDelimiter = "\n\n---\n\n"

// AssembleContext concatenates the ranked chunk texts, best first, into
// the single context block handed to the generator. Near-duplicate
// chunks across source PDFs are passed through as-is; deduplication is
// deliberately out of scope. Length is bounded only by top-N — an
// oversized context is a configuration error the generator reports.
func AssembleContext(ranked []domain.RankedCandidate) string {
	if len(ranked) == 0 {
		return ""
	}

	parts := make([]string, len(ranked))
	for i := range ranked {
		parts[i] = ranked[i].Chunk.Text
	}
	return strings.Join(parts, contextDelimiter)
}

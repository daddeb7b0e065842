package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

func TestAssembleContext(t *testing.T) {
	ranked := []domain.RankedCandidate{
		{Chunk: domain.Chunk{ID: "1", Text: "first"}, Relevance: 0.9},
		{Chunk: domain.Chunk{ID: "2", Text: "second"}, Relevance: 0.5},
		{Chunk: domain.Chunk{ID: "3", Text: "third"}, Relevance: 0.1},
	}

	got := AssembleContext(ranked)
	assert.Equal(t, "first\n\n---\n\nsecond\n\n---\n\nthird", got)
}

func TestAssembleContext_Empty(t *testing.T) {
	assert.Equal(t, "", AssembleContext(nil))
	assert.Equal(t, "", AssembleContext([]domain.RankedCandidate{}))
}

func TestAssembleContext_SingleChunk(t *testing.T) {
	ranked := []domain.RankedCandidate{
		{Chunk: domain.Chunk{ID: "1", Text: "only"}},
	}
	assert.Equal(t, "only", AssembleContext(ranked))
}

func TestAssembleContext_KeepsDuplicates(t *testing.T) {
	// Near-identical chunks across PDFs are passed through as-is.
	ranked := []domain.RankedCandidate{
		{Chunk: domain.Chunk{ID: "1", Text: "same"}},
		{Chunk: domain.Chunk{ID: "2", Text: "same"}},
	}
	assert.Equal(t, "same\n\n---\n\nsame", AssembleContext(ranked))
}

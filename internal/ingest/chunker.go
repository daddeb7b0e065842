package ingest

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Chunker splits document text into fixed-size overlapping chunks.
type Chunker struct {
	chunkSize int
	overlap   int
}

// ChunkerOption configures the chunker.
type ChunkerOption func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) ChunkerOption {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// NewChunker creates a chunker with the given options.
func NewChunker(opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Chunk splits text into overlapping chunks carrying the source name
// and chunk position in their metadata. Sizes are measured in runes so
// multi-byte text is never split mid-character.
func (c *Chunker) Chunk(text, source string) []domain.Chunk {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	textLen := len(runes)

	estimated := (textLen / (c.chunkSize - c.overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	start := 0

	for start < textLen {
		end := start + c.chunkSize
		if end > textLen {
			end = textLen
		}

		chunks = append(chunks, domain.Chunk{
			ID:   uuid.New().String(),
			Text: string(runes[start:end]),
			Metadata: map[string]string{
				"source":   source,
				"position": strconv.Itoa(position),
			},
		})
		position++

		start += c.chunkSize - c.overlap
	}

	return chunks
}

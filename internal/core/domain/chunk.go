package domain

// Chunk represents a searchable unit of source-document text.
// Chunks are produced once by the offline index build and never
// mutate afterwards.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Text is the chunk's text content.
	Text string

	// Metadata contains source attribution, e.g. the originating
	// PDF file and page number.
	Metadata map[string]string
}

// Candidate is a chunk returned by first-pass similarity search.
type Candidate struct {
	// Chunk is the retrieved chunk.
	Chunk Chunk

	// Similarity is the cosine similarity between the query and
	// chunk embeddings (0-1 for unit-normalised vectors).
	Similarity float64
}

// RankedCandidate is a chunk scored by the second-pass reranker.
// Relevance scores live in the cross-encoder's own score space and
// are not comparable to Candidate.Similarity.
type RankedCandidate struct {
	// Chunk is the retrieved chunk.
	Chunk Chunk

	// Relevance is the cross-encoder relevance score.
	Relevance float64
}

package services

import (
	"context"
	"fmt"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
)

// --- Mock implementations of the driven ports ---

// mockEmbedding implements driven.EmbeddingService for testing.
type mockEmbedding struct {
	embedding  []float32
	embedErr   error
	lastInput  string
	embedCalls int
}

func (m *mockEmbedding) Embed(_ context.Context, text string) ([]float32, error) {
	m.embedCalls++
	m.lastInput = text
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if m.embedding != nil {
		return m.embedding, nil
	}
	return []float32{1, 0, 0}, nil
}

func (m *mockEmbedding) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (m *mockEmbedding) Dimensions() int              { return 3 }
func (m *mockEmbedding) ModelName() string            { return "mock-embed" }
func (m *mockEmbedding) Ping(_ context.Context) error { return nil }
func (m *mockEmbedding) Close() error                 { return nil }

// mockIndex implements driven.VectorIndex for testing.
type mockIndex struct {
	hits      []driven.VectorHit
	searchErr error
}

func (m *mockIndex) Search(_ context.Context, _ []float32, k int) ([]driven.VectorHit, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if k > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:k], nil
}

func (m *mockIndex) Size() int           { return len(m.hits) }
func (m *mockIndex) Fingerprint() string { return "mock-embed" }
func (m *mockIndex) Close() error        { return nil }

// mockChunkStore implements driven.ChunkStore for testing.
type mockChunkStore struct {
	chunks map[string]domain.Chunk
	getErr error
}

func (m *mockChunkStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	chunk, ok := m.chunks[id]
	if !ok {
		return nil, fmt.Errorf("chunk %s: %w", id, domain.ErrNotFound)
	}
	return &chunk, nil
}

func (m *mockChunkStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if m.chunks == nil {
		m.chunks = make(map[string]domain.Chunk)
	}
	for _, c := range chunks {
		m.chunks[c.ID] = c
	}
	return nil
}

func (m *mockChunkStore) Count(_ context.Context) (int, error) { return len(m.chunks), nil }
func (m *mockChunkStore) Close() error                         { return nil }

// mockRerank implements driven.RerankService for testing. When scores
// is nil it returns a descending score per input position so input
// order is preserved.
type mockRerank struct {
	scores   []float64
	scoreErr error
}

func (m *mockRerank) Score(_ context.Context, _ string, docs []string) ([]float64, error) {
	if m.scoreErr != nil {
		return nil, m.scoreErr
	}
	if m.scores != nil {
		return m.scores, nil
	}
	out := make([]float64, len(docs))
	for i := range docs {
		out[i] = float64(len(docs) - i)
	}
	return out, nil
}

func (m *mockRerank) ModelName() string            { return "mock-rerank" }
func (m *mockRerank) Ping(_ context.Context) error { return nil }
func (m *mockRerank) Close() error                 { return nil }

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response      string
	generateErr   error
	generateCalls int
	lastPrompt    string
	lastOpts      driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.generateCalls++
	m.lastPrompt = prompt
	m.lastOpts = opts
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockTranslator implements driven.Translator for testing. The
// translate function receives (text, source, target).
type mockTranslator struct {
	translate func(text, source, target string) (string, error)
	calls     int
}

func (m *mockTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	m.calls++
	if m.translate != nil {
		return m.translate(text, source, target)
	}
	return text, nil
}

func (m *mockTranslator) Close() error { return nil }

package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/index/flat"
	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

type mockEmbedding struct {
	batches [][]string
	dims    int
}

func (m *mockEmbedding) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (m *mockEmbedding) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batches = append(m.batches, texts)
	vecs := make([][]float32, len(texts))
	for i := range texts {
		v := make([]float32, m.dims)
		v[0] = 1
		vecs[i] = v
	}
	return vecs, nil
}

func (m *mockEmbedding) Dimensions() int            { return m.dims }
func (m *mockEmbedding) ModelName() string          { return "test-model" }
func (m *mockEmbedding) Ping(context.Context) error { return nil }
func (m *mockEmbedding) Close() error               { return nil }

type mockStore struct {
	saved []domain.Chunk
}

func (m *mockStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	for _, c := range m.saved {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	m.saved = append(m.saved, chunks...)
	return nil
}

func (m *mockStore) Count(context.Context) (int, error) { return len(m.saved), nil }
func (m *mockStore) Close() error                       { return nil }

func testChunks(n int) []domain.Chunk {
	chunks := make([]domain.Chunk, n)
	for i := range chunks {
		chunks[i] = domain.Chunk{ID: string(rune('a' + i)), Text: "text"}
	}
	return chunks
}

func TestEmbedChunks_Batching(t *testing.T) {
	emb := &mockEmbedding{dims: 4}
	b := NewBuilder(emb, &mockStore{},
		WithBatchSize(2),
		WithEmbedRate(rate.Inf),
	)

	idx, err := flat.NewBuilder(emb.ModelName(), emb.Dimensions())
	require.NoError(t, err)
	require.NoError(t, b.embedChunks(context.Background(), testChunks(5), idx))

	// 5 chunks at batch size 2 → batches of 2, 2, 1.
	require.Len(t, emb.batches, 3)
	assert.Len(t, emb.batches[0], 2)
	assert.Len(t, emb.batches[2], 1)
	assert.Equal(t, 5, idx.Len())
}

func TestFindPDFs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.pdf", "b.PDF", "notes.txt", filepath.Join("nested", "c.pdf")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	pdfs, err := findPDFs(dir)
	require.NoError(t, err)
	require.Len(t, pdfs, 3)
	for _, p := range pdfs {
		assert.NotContains(t, p, "notes.txt")
	}
}

func TestFindPDFs_MissingDir(t *testing.T) {
	_, err := findPDFs(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestRun_NoPDFs(t *testing.T) {
	emb := &mockEmbedding{dims: 4}
	b := NewBuilder(emb, &mockStore{})

	_, err := b.Run(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "corpus.idx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no PDF files")
}

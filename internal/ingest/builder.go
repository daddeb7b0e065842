// Package ingest builds the searchable corpus from a directory of PDF
// documents: extract, chunk, embed, persist. It runs offline; the
// answer pipeline only ever reads the artifacts it produces.
package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/index/flat"
	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
	"github.com/kaaval-labs/kaaval-cli/internal/logger"
)

// DefaultBatchSize is the number of chunks embedded per request.
const DefaultBatchSize = 32

// DefaultEmbedRate caps embedding requests per second, keeping batch
// ingestion under hosted-API rate limits.
const DefaultEmbedRate = rate.Limit(2)

// Builder runs the ingestion pipeline.
type Builder struct {
	embedding driven.EmbeddingService
	store     driven.ChunkStore
	chunker   *Chunker
	limiter   *rate.Limiter
	batchSize int
}

// Stats summarises an ingestion run.
type Stats struct {
	Documents int
	Chunks    int
}

// BuilderOption configures the builder.
type BuilderOption func(*Builder)

// WithBatchSize sets the embedding batch size.
func WithBatchSize(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithEmbedRate sets the embedding request rate limit.
func WithEmbedRate(r rate.Limit) BuilderOption {
	return func(b *Builder) {
		if r > 0 {
			b.limiter = rate.NewLimiter(r, 1)
		}
	}
}

// WithChunker replaces the default chunker.
func WithChunker(c *Chunker) BuilderOption {
	return func(b *Builder) {
		if c != nil {
			b.chunker = c
		}
	}
}

// NewBuilder creates an ingestion builder.
func NewBuilder(embedding driven.EmbeddingService, store driven.ChunkStore, opts ...BuilderOption) *Builder {
	b := &Builder{
		embedding: embedding,
		store:     store,
		chunker:   NewChunker(),
		limiter:   rate.NewLimiter(DefaultEmbedRate, 1),
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run walks pdfDir, chunks and embeds every PDF found, saves the
// chunks to the store and writes the vector index artifact to
// indexPath. The artifact records the embedding model so the query
// path can reject a mismatched index.
func (b *Builder) Run(ctx context.Context, pdfDir, indexPath string) (Stats, error) {
	var stats Stats

	pdfs, err := findPDFs(pdfDir)
	if err != nil {
		return stats, err
	}
	if len(pdfs) == 0 {
		return stats, fmt.Errorf("ingest: no PDF files found in %s", pdfDir)
	}

	idx, err := flat.NewBuilder(b.embedding.ModelName(), b.embedding.Dimensions())
	if err != nil {
		return stats, fmt.Errorf("ingest: index builder: %w", err)
	}

	for _, path := range pdfs {
		logger.Info("Ingesting %s", filepath.Base(path))

		text, err := ExtractPDF(path)
		if err != nil {
			return stats, fmt.Errorf("ingest: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			logger.Warn("No extractable text in %s, skipping", filepath.Base(path))
			continue
		}

		chunks := b.chunker.Chunk(text, filepath.Base(path))
		if err := b.embedChunks(ctx, chunks, idx); err != nil {
			return stats, err
		}
		if err := b.store.SaveChunks(ctx, chunks); err != nil {
			return stats, fmt.Errorf("ingest: save chunks: %w", err)
		}

		stats.Documents++
		stats.Chunks += len(chunks)
		logger.Debug("%s: %d chunks", filepath.Base(path), len(chunks))
	}

	if idx.Len() == 0 {
		return stats, fmt.Errorf("ingest: no chunks produced from %s", pdfDir)
	}

	if err := idx.Save(indexPath); err != nil {
		return stats, fmt.Errorf("ingest: save index: %w", err)
	}

	logger.Info("Indexed %d chunks from %d documents", stats.Chunks, stats.Documents)
	return stats, nil
}

// embedChunks embeds chunks in batches and adds the vectors to the
// index builder under their chunk IDs.
func (b *Builder) embedChunks(ctx context.Context, chunks []domain.Chunk, idx *flat.Builder) error {
	for start := 0; start < len(chunks); start += b.batchSize {
		end := start + b.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		if err := b.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("ingest: rate limiter: %w", err)
		}

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Text
		}

		vectors, err := b.embedding.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("ingest: embed batch: %w", err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("ingest: embedding returned %d vectors for %d chunks", len(vectors), len(batch))
		}

		for i, vec := range vectors {
			if err := idx.Add(batch[i].ID, vec); err != nil {
				return fmt.Errorf("ingest: index chunk %s: %w", batch[i].ID, err)
			}
		}
	}
	return nil
}

// findPDFs returns all .pdf files under dir, sorted by path so runs
// are reproducible.
func findPDFs(dir string) ([]string, error) {
	var pdfs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			pdfs = append(pdfs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ingest: walk %s: %w", dir, err)
	}
	return pdfs, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/config/file"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kaaval-labs/kaaval-cli/internal/ingest"
)

var (
	indexChunkSize int
	indexOverlap   int
	indexBatchSize int
)

var indexCmd = &cobra.Command{
	Use:   "index [pdf-dir]",
	Short: "Build the document index from a directory of PDFs",
	Long: `Extracts text from every PDF under the given directory, splits it
into overlapping chunks, embeds the chunks and writes the chunk store
and the vector index artifact. The answer pipeline refuses to start
without this artifact.

The embedding model used here must match the one configured for
querying; the artifact records it and a mismatch is rejected at load.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().IntVar(&indexChunkSize, "chunk-size", ingest.DefaultChunkSize, "chunk size in characters")
	indexCmd.Flags().IntVar(&indexOverlap, "overlap", ingest.DefaultChunkOverlap, "overlap between chunks in characters")
	indexCmd.Flags().IntVar(&indexBatchSize, "batch-size", ingest.DefaultBatchSize, "chunks embedded per request")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	settings, err := file.Load(configFlag)
	if err != nil {
		return err
	}
	cfg, err := settings.PipelineConfig()
	if err != nil {
		return err
	}

	embedding := newEmbedding(settings)
	defer embedding.Close()

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open chunk store: %w", err)
	}
	defer store.Close()

	builder := ingest.NewBuilder(embedding, store,
		ingest.WithBatchSize(indexBatchSize),
		ingest.WithChunker(ingest.NewChunker(
			ingest.WithChunkSize(indexChunkSize),
			ingest.WithOverlap(indexOverlap),
		)),
	)

	stats, err := builder.Run(context.Background(), args[0], cfg.IndexPath)
	if err != nil {
		return err
	}

	cmd.Printf("Indexed %d chunks from %d documents.\n", stats.Chunks, stats.Documents)
	cmd.Printf("Index artifact written to %s\n", cfg.IndexPath)
	return nil
}

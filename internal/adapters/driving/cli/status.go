package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/config/file"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/index/flat"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/llm/groq"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/rerank/cohere"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

const pingTimeout = 10 * time.Second

// statusReport is the result of the readiness checks.
type statusReport struct {
	IndexPath    string
	IndexPresent bool
	IndexSize    int
	Fingerprint  string
	ChunkCount   int
	EmbeddingOK  bool
	EmbeddingErr string
	RerankerOK   bool
	RerankerErr  string
	GeneratorOK  bool
	GeneratorErr string
	Ready        bool
}

// collectStatusFn is swapped out in tests.
var collectStatusFn = collectStatus

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the answer pipeline is ready",
	Long: `Reports the state of the index artifact, the chunk store and the
remote services. The pipeline is ready when the index artifact exists
and contains at least one vector.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	report, err := collectStatusFn(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Index:     %s\n", report.IndexPath)
	if report.IndexPresent {
		cmd.Printf("           %d vectors, model %s\n", report.IndexSize, report.Fingerprint)
	} else {
		cmd.Println("           missing (run 'kaaval index')")
	}
	cmd.Printf("Chunks:    %d\n", report.ChunkCount)

	printCheck(cmd, "Embedding", report.EmbeddingOK, report.EmbeddingErr)
	printCheck(cmd, "Reranker", report.RerankerOK, report.RerankerErr)
	printCheck(cmd, "Generator", report.GeneratorOK, report.GeneratorErr)

	if report.Ready {
		cmd.Println("\nPipeline ready.")
	} else {
		cmd.Println("\nPipeline NOT ready.")
	}
	return nil
}

func printCheck(cmd *cobra.Command, name string, ok bool, detail string) {
	if ok {
		cmd.Printf("%s: ok\n", name)
		return
	}
	cmd.Printf("%s: unreachable (%s)\n", name, detail)
}

// collectStatus wires the driven adapters and probes each of them.
func collectStatus(ctx context.Context) (statusReport, error) {
	var report statusReport

	settings, err := file.Load(configFlag)
	if err != nil {
		return report, err
	}
	cfg, err := settings.PipelineConfig()
	if err != nil {
		return report, err
	}
	report.IndexPath = cfg.IndexPath

	idx, err := flat.Load(cfg.IndexPath)
	switch {
	case errors.Is(err, domain.ErrIndexMissing):
		// Reported as missing below.
	case err != nil:
		return report, err
	default:
		report.IndexPresent = true
		report.IndexSize = idx.Size()
		report.Fingerprint = idx.Fingerprint()
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return report, err
	}
	defer store.Close()
	if count, err := store.Count(ctx); err == nil {
		report.ChunkCount = count
	}

	embedding := newEmbedding(settings)
	defer embedding.Close()
	if err := embedding.Ping(ctx); err != nil {
		report.EmbeddingErr = err.Error()
	} else {
		report.EmbeddingOK = true
	}

	rerank := cohere.NewRerankService(cohere.Config{
		APIKey:  settings.Reranker.APIKey,
		BaseURL: settings.Reranker.BaseURL,
		Model:   settings.Reranker.Model,
	})
	defer rerank.Close()
	if err := rerank.Ping(ctx); err != nil {
		report.RerankerErr = err.Error()
	} else {
		report.RerankerOK = true
	}

	llm, err := groq.NewLLMService(groq.Config{
		APIKey:  settings.Generator.APIKey,
		BaseURL: settings.Generator.BaseURL,
		Model:   settings.Generator.Model,
	})
	if err != nil {
		report.GeneratorErr = err.Error()
	} else {
		defer llm.Close()
		if err := llm.Ping(ctx); err != nil {
			report.GeneratorErr = err.Error()
		} else {
			report.GeneratorOK = true
		}
	}

	report.Ready = report.IndexPresent && report.IndexSize > 0
	return report, nil
}

package cli

import (
	"errors"
	"fmt"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/config/file"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/embedding/ollama"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/embedding/openai"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/index/flat"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/llm/groq"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/rerank/cohere"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/storage/sqlite"
	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driven/translate/google"
	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driving"
	"github.com/kaaval-labs/kaaval-cli/internal/core/services"
	"github.com/kaaval-labs/kaaval-cli/internal/logger"
)

// assistantService is the wired pipeline. Commands build it lazily
// through getAssistant; tests inject a stub directly.
var assistantService driving.AssistantService

// getAssistant returns the wired assistant, building it on first use.
func getAssistant() (driving.AssistantService, error) {
	if assistantService != nil {
		return assistantService, nil
	}

	svc, err := buildAssistant()
	if err != nil {
		return nil, err
	}
	assistantService = svc
	return svc, nil
}

// buildAssistant wires the full answer pipeline from settings. A
// missing index artifact is not a wiring error: the assistant comes up
// not ready and reports domain.ErrIndexMissing per request.
func buildAssistant() (driving.AssistantService, error) {
	settings, err := file.Load(configFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := settings.PipelineConfig()
	if err != nil {
		return nil, err
	}

	embedding := newEmbedding(settings)

	var index driven.VectorIndex
	idx, err := flat.Load(cfg.IndexPath)
	switch {
	case errors.Is(err, domain.ErrIndexMissing):
		logger.Warn("Index artifact %s not found; run 'kaaval index' first", cfg.IndexPath)
	case err != nil:
		return nil, fmt.Errorf("load index: %w", err)
	default:
		if err := idx.CheckCompatibility(embedding.ModelName(), embedding.Dimensions()); err != nil {
			return nil, fmt.Errorf("index artifact %s: %w", cfg.IndexPath, err)
		}
		index = idx
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open chunk store: %w", err)
	}

	llm, err := groq.NewLLMService(groq.Config{
		APIKey:  settings.Generator.APIKey,
		BaseURL: settings.Generator.BaseURL,
		Model:   settings.Generator.Model,
	})
	if err != nil {
		return nil, err
	}

	rerank := cohere.NewRerankService(cohere.Config{
		APIKey:  settings.Reranker.APIKey,
		BaseURL: settings.Reranker.BaseURL,
		Model:   settings.Reranker.Model,
	})

	translator := google.NewTranslator(google.Config{})

	retriever := services.NewRetriever(embedding, index, store, cfg.RetrievalK)
	reranker := services.NewReranker(rerank)

	return services.NewAssistant(cfg, retriever, reranker, llm, translator, index), nil
}

// newEmbedding selects the embedding provider from settings.
func newEmbedding(settings *file.Settings) driven.EmbeddingService {
	if settings.Embedding.Provider == "ollama" {
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL:    settings.Embedding.BaseURL,
			Model:      settings.Embedding.Model,
			Dimensions: settings.Embedding.Dimensions,
		})
	}
	return openai.NewEmbeddingService(openai.Config{
		APIKey:     settings.Embedding.APIKey,
		BaseURL:    settings.Embedding.BaseURL,
		Model:      settings.Embedding.Model,
		Dimensions: settings.Embedding.Dimensions,
	})
}

// Package file loads runtime settings from a TOML file, with
// environment variables taking precedence for secrets.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

// Environment variables that override file values. API keys never
// belong in the config file.
const (
	EnvGroqAPIKey      = "GROQ_API_KEY"
	EnvEmbeddingAPIKey = "EMBEDDING_API_KEY"
	EnvCohereAPIKey    = "COHERE_API_KEY"
)

// Settings is the full runtime configuration: the pipeline parameters
// from domain.Config plus adapter endpoints and credentials.
type Settings struct {
	Pipeline  PipelineSettings  `toml:"pipeline"`
	Embedding EmbeddingSettings `toml:"embedding"`
	Reranker  RerankerSettings  `toml:"reranker"`
	Generator GeneratorSettings `toml:"generator"`
}

// PipelineSettings holds retrieval and storage parameters.
type PipelineSettings struct {
	RetrievalK int    `toml:"retrieval_k"`
	RerankTopN int    `toml:"rerank_top_n"`
	IndexPath  string `toml:"index_path"`
	DataDir    string `toml:"data_dir"`
}

// EmbeddingSettings selects and configures the embedding provider.
type EmbeddingSettings struct {
	// Provider is "openai" (any OpenAI-compatible server) or "ollama".
	Provider   string `toml:"provider"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
	APIKey     string `toml:"-"`
}

// RerankerSettings configures the cross-encoder rerank API.
type RerankerSettings struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	APIKey  string `toml:"-"`
}

// GeneratorSettings configures the answer LLM.
type GeneratorSettings struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	APIKey  string `toml:"-"`
}

// DefaultPath returns the default config file location,
// ~/.kaaval/kaaval.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kaaval", "kaaval.toml"), nil
}

// Load reads settings from the TOML file at path, applies defaults
// for anything unset, and pulls secrets from the environment. A
// missing file is not an error: defaults plus environment apply.
func Load(path string) (*Settings, error) {
	s := &Settings{}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config: resolve default path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	s.applyDefaults()
	s.applyEnv()
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Pipeline.RetrievalK == 0 {
		s.Pipeline.RetrievalK = domain.DefaultRetrievalK
	}
	if s.Pipeline.RerankTopN == 0 {
		s.Pipeline.RerankTopN = domain.DefaultRerankTopN
	}
	if s.Pipeline.IndexPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			s.Pipeline.IndexPath = filepath.Join(home, ".kaaval", "data", "corpus.idx")
		}
	}
	if s.Pipeline.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			s.Pipeline.DataDir = filepath.Join(home, ".kaaval", "data")
		}
	}
	if s.Embedding.Provider == "" {
		s.Embedding.Provider = "openai"
	}
	if s.Embedding.Model == "" {
		s.Embedding.Model = domain.DefaultEmbeddingModel
	}
	if s.Reranker.Model == "" {
		s.Reranker.Model = domain.DefaultRerankerModel
	}
	if s.Generator.Model == "" {
		s.Generator.Model = domain.DefaultGeneratorModel
	}
}

func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvGroqAPIKey); v != "" {
		s.Generator.APIKey = v
	}
	if v := os.Getenv(EnvEmbeddingAPIKey); v != "" {
		s.Embedding.APIKey = v
	}
	if v := os.Getenv(EnvCohereAPIKey); v != "" {
		s.Reranker.APIKey = v
	}
}

// PipelineConfig converts the settings into the immutable pipeline
// configuration the core services consume.
func (s *Settings) PipelineConfig() (domain.Config, error) {
	cfg := domain.Config{
		EmbeddingModel: s.Embedding.Model,
		RerankerModel:  s.Reranker.Model,
		GeneratorModel: s.Generator.Model,
		RetrievalK:     s.Pipeline.RetrievalK,
		RerankTopN:     s.Pipeline.RerankTopN,
		IndexPath:      s.Pipeline.IndexPath,
		DataDir:        s.Pipeline.DataDir,
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

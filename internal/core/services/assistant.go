package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driving"
	"github.com/kaaval-labs/kaaval-cli/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// answerPrompt is the fixed instruction template for generation. It
// grounds the model in the retrieved context only and names the exact
// fallback sentence the detector matches against.
const answerPrompt = `You are an expert assistant for the Thoothukudi District Police.
Your primary instruction is to answer the user's question based ONLY on the following context.
If the information is not in the context, you MUST respond with:
"%s"
Do not use any outside knowledge. Be concise, respectful, and helpful.

<context>
%s
</context>

Question: %s
Answer:`

// generateMaxTokens bounds the completion length. Answers are meant to
// be concise; the template already instructs the model accordingly.
const generateMaxTokens = 1024

// Assistant is the pipeline orchestrator. It composes retrieval,
// reranking, context assembly, constrained generation, fallback
// detection and the bilingual translation boundary into the public
// Answer contract. Each stage runs sequentially; each remote call is
// attempted exactly once per request.
type Assistant struct {
	retriever  *Retriever
	reranker   *Reranker
	llm        driven.LLMService
	translator driven.Translator
	index      driven.VectorIndex
	topN       int
}

// NewAssistant creates the orchestrator. index may be nil when the
// artifact has not been built yet; Ready reports false and every
// Answer call fails with domain.ErrIndexMissing until it exists.
func NewAssistant(
	cfg domain.Config,
	retriever *Retriever,
	reranker *Reranker,
	llm driven.LLMService,
	translator driven.Translator,
	index driven.VectorIndex,
) *Assistant {
	topN := cfg.RerankTopN
	if topN <= 0 {
		topN = domain.DefaultRerankTopN
	}
	return &Assistant{
		retriever:  retriever,
		reranker:   reranker,
		llm:        llm,
		translator: translator,
		index:      index,
		topN:       topN,
	}
}

// Ready reports whether the pipeline can serve queries. False when the
// index artifact is absent, prompting the offline build step.
func (a *Assistant) Ready() bool {
	return a.index != nil && a.index.Size() > 0
}

// Answer runs the full pipeline for one question.
func (a *Assistant) Answer(ctx context.Context, query string, lang domain.Language) (domain.Answer, error) {
	logger.Section("Answer Pipeline")
	logger.Debug("Query: %q, language: %s", query, lang)

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Answer{}, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if !lang.IsValid() {
		return domain.Answer{}, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, lang)
	}
	if !a.Ready() {
		return domain.Answer{}, domain.ErrIndexMissing
	}

	// Inbound boundary: retrieval and generation always operate in the
	// pipeline's working language.
	pipelineQuery := a.translateIn(ctx, query, lang)

	candidates, err := a.retriever.Retrieve(ctx, pipelineQuery)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	logger.Info("Retrieved %d candidates", len(candidates))

	ranked, err := a.reranker.Rerank(ctx, pipelineQuery, candidates, a.topN)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	// An empty corpus match is a legitimate "no answer", not an error,
	// and needs no model call to decide.
	if len(ranked) == 0 {
		logger.Info("No context found, returning fallback")
		return domain.Answer{
			Text:       domain.LocalFallbackAnswer(lang),
			IsFallback: true,
		}, nil
	}

	contextBlock := AssembleContext(ranked)
	logger.Debug("Assembled context: %d chars from %d chunks", len(contextBlock), len(ranked))

	prompt := fmt.Sprintf(answerPrompt, domain.FallbackAnswer, contextBlock, pipelineQuery)
	raw, err := a.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens: generateMaxTokens,
		// Deterministic decoding: identical (context, question) pairs
		// must produce byte-identical output, or exact-match fallback
		// detection breaks.
		Temperature: 0,
	})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	// Fallback detection runs on the raw English output, before any
	// translation. A round-trip through the translator is not stable
	// enough for an exact-match test.
	answerText := strings.TrimSpace(raw)
	isFallback := domain.IsFallbackAnswer(answerText)
	logger.Info("Generated answer: %d chars, fallback=%t", len(answerText), isFallback)

	return domain.Answer{
		Text:       a.translateOut(ctx, answerText, lang, isFallback),
		IsFallback: isFallback,
	}, nil
}

// translateIn converts the user's query to the pipeline language.
// Failure degrades to the original text; a mistranslated or
// untranslated query costs retrieval precision, not availability.
func (a *Assistant) translateIn(ctx context.Context, query string, lang domain.Language) string {
	if lang == domain.PipelineLanguage || a.translator == nil {
		return query
	}

	translated, err := a.translator.Translate(ctx, query, driven.SourceAuto, domain.PipelineLanguage.String())
	if err != nil {
		logger.Warn("Inbound translation failed, using original query: %v", err)
		return query
	}
	logger.Debug("Inbound translation: %q -> %q", query, translated)
	return translated
}

// translateOut converts the answer to the user's language. Fallback
// answers are never machine-translated: the canonical sentence is
// looked up per language so the user always sees a well-formed
// message regardless of translation-service idiosyncrasies.
func (a *Assistant) translateOut(ctx context.Context, answer string, lang domain.Language, isFallback bool) string {
	if isFallback {
		return domain.LocalFallbackAnswer(lang)
	}
	if lang == domain.PipelineLanguage || a.translator == nil {
		return answer
	}

	translated, err := a.translator.Translate(ctx, answer, domain.PipelineLanguage.String(), lang.String())
	if err != nil {
		logger.Warn("Outbound translation failed, returning English answer: %v", err)
		return answer
	}
	return translated
}

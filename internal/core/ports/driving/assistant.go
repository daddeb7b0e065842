package driving

import (
	"context"

	"github.com/kaaval-labs/kaaval-cli/internal/core/domain"
)

// AssistantService answers natural-language questions about the
// document corpus. It is a pure function of (query, language): no
// conversational memory, no hidden state.
type AssistantService interface {
	// Answer runs the full pipeline for one question and returns the
	// response in the caller's language. Errors are per-request and
	// never replaced by the fallback sentence.
	Answer(ctx context.Context, query string, lang domain.Language) (domain.Answer, error)

	// Ready reports whether the pipeline can serve queries. It is
	// false when the index artifact has not been built.
	Ready() bool
}

package driven

import "context"

// SourceAuto asks the translator to detect the source language.
const SourceAuto = "auto"

// Translator provides best-effort text translation at the pipeline
// edges. Failures must be returned to the caller, but callers treat
// them as non-fatal: the pipeline degrades to the untranslated text
// rather than aborting the request.
type Translator interface {
	// Translate converts text from source to target language. Source
	// may be SourceAuto for automatic detection.
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Close releases resources.
	Close() error
}

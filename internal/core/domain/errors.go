package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexMissing indicates the persisted vector index artifact does
	// not exist. This is a startup-class failure: no query can be served
	// until the offline build step has run. It is never retried.
	ErrIndexMissing = errors.New("vector index artifact missing")

	// ErrIndexIncompatible indicates the index artifact was built with a
	// different embedding configuration than the process is running with.
	// Similarity scores would be meaningless, so the load is refused.
	ErrIndexIncompatible = errors.New("vector index incompatible with embedding model")

	// ErrRetrieval indicates embedding or index search failed for a
	// request. Fatal per request: no partial context is ever assembled.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration indicates the remote completion call failed. Fatal
	// per request, and surfaced distinctly from a legitimate "not found"
	// fallback so callers can tell a broken system from an empty corpus.
	ErrGeneration = errors.New("answer generation failed")

	// ErrTranslation indicates a translation call failed. Non-fatal: the
	// pipeline degrades to the untranslated text and continues.
	ErrTranslation = errors.New("translation failed")
)

// Package domain defines the core business entities for Kaaval.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: a bounded span of source-document text, the atomic retrieval unit
//   - Candidate: a chunk paired with a first-pass similarity score
//   - RankedCandidate: a chunk paired with a second-pass relevance score
//   - Answer: the pipeline's final response for one question
//   - Language: a supported user-interface language
//   - Config: the immutable pipeline configuration
package domain

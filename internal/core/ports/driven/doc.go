// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports).
//
// The core services depend only on these interfaces; concrete
// implementations live under internal/adapters/driven and compose three
// independently-fallible remote services (embedder, reranker, generator)
// plus a best-effort translator into one deterministic pipeline.
package driven

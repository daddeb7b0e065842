// Package driving provides interfaces through which external actors
// (CLI, TUI) use the core pipeline (primary/inbound ports).
package driving

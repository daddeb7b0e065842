// Package services implements the core pipeline logic behind the
// driving ports, composing the driven ports (embedding, vector index,
// reranker, LLM, translator, chunk store) into the question-answering
// flow: translate in, retrieve, rerank, assemble, generate, detect
// fallback, translate out.
package services

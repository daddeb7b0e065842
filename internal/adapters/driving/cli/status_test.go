package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStatus(t *testing.T, report statusReport) {
	t.Helper()
	original := collectStatusFn
	collectStatusFn = func(context.Context) (statusReport, error) {
		return report, nil
	}
	t.Cleanup(func() { collectStatusFn = original })
}

func TestStatusCmd_Ready(t *testing.T) {
	withStatus(t, statusReport{
		IndexPath:    "/tmp/corpus.idx",
		IndexPresent: true,
		IndexSize:    412,
		Fingerprint:  "BAAI/bge-small-en-v1.5",
		ChunkCount:   412,
		EmbeddingOK:  true,
		RerankerOK:   true,
		GeneratorOK:  true,
		Ready:        true,
	})

	out, err := execute(t, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "412 vectors")
	assert.Contains(t, out, "BAAI/bge-small-en-v1.5")
	assert.Contains(t, out, "Embedding: ok")
	assert.Contains(t, out, "Reranker: ok")
	assert.Contains(t, out, "Generator: ok")
	assert.Contains(t, out, "Pipeline ready.")
}

func TestStatusCmd_MissingIndex(t *testing.T) {
	withStatus(t, statusReport{
		IndexPath:    "/tmp/corpus.idx",
		GeneratorErr: "API key is required",
	})

	out, err := execute(t, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "missing (run 'kaaval index')")
	assert.Contains(t, out, "Generator: unreachable (API key is required)")
	assert.Contains(t, out, "Pipeline NOT ready.")
}

package cohere

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRerankService_Defaults(t *testing.T) {
	svc := NewRerankService(Config{})

	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultModel, svc.ModelName())
}

func TestScore(t *testing.T) {
	var gotReq rerankRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/rerank", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		// API returns results best-first, not in document order.
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"index": 2, "relevance_score": 0.95},
				{"index": 0, "relevance_score": 0.40},
				{"index": 1, "relevance_score": 0.10},
			},
		})
	}))
	defer server.Close()

	svc := NewRerankService(Config{APIKey: "test-key", BaseURL: server.URL})

	scores, err := svc.Score(context.Background(), "emergency helpline", []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, "emergency helpline", gotReq.Query)
	assert.Equal(t, []string{"a", "b", "c"}, gotReq.Documents)
	assert.Equal(t, DefaultModel, gotReq.Model)

	// Scores come back aligned with document order.
	assert.Equal(t, []float64{0.40, 0.10, 0.95}, scores)
}

func TestScore_Empty(t *testing.T) {
	svc := NewRerankService(Config{})

	scores, err := svc.Score(context.Background(), "query", nil)
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestScore_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid model"})
	}))
	defer server.Close()

	svc := NewRerankService(Config{BaseURL: server.URL})

	_, err := svc.Score(context.Background(), "query", []string{"doc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model")
}

func TestScore_MissingResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"index": 0, "relevance_score": 0.5},
			},
		})
	}))
	defer server.Close()

	svc := NewRerankService(Config{BaseURL: server.URL})

	_, err := svc.Score(context.Background(), "query", []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing score")
}

func TestScore_IndexOutOfRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"index": 7, "relevance_score": 0.5},
			},
		})
	}))
	defer server.Close()

	svc := NewRerankService(Config{BaseURL: server.URL})

	_, err := svc.Score(context.Background(), "query", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"index": 0, "relevance_score": 1.0},
			},
		})
	}))
	defer server.Close()

	svc := NewRerankService(Config{BaseURL: server.URL})
	require.NoError(t, svc.Ping(context.Background()))
}

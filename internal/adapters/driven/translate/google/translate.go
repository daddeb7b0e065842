// Package google provides a translator adapter backed by the public
// Google Translate web endpoint. The endpoint is unauthenticated and
// rate limited, so calls are spaced out with a client-side limiter.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/kaaval-labs/kaaval-cli/internal/core/ports/driven"
)

// Ensure Translator implements the interface.
var _ driven.Translator = (*Translator)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://translate.googleapis.com"
	DefaultTimeout = 15 * time.Second

	// DefaultRateLimit is the sustained request rate against the
	// public endpoint. Bursting above it gets the client blocked.
	DefaultRateLimit = rate.Limit(5)
)

// Config holds configuration for the Google translator.
type Config struct {
	// BaseURL is the endpoint base URL (default: https://translate.googleapis.com).
	BaseURL string

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration

	// RateLimit caps requests per second (default: 5/s).
	RateLimit rate.Limit
}

// Translator translates text through the translate_a/single endpoint,
// the same backend the Google web widget uses.
type Translator struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewTranslator creates a new Google translator.
func NewTranslator(cfg Config) *Translator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}

	return &Translator{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(cfg.RateLimit, 1),
	}
}

// Translate converts text from source to target language. Source may
// be driven.SourceAuto to let the endpoint detect the language.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if target == "" {
		return "", fmt.Errorf("translate: target language is required")
	}
	if source == "" {
		source = driven.SourceAuto
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("translate: rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := t.baseURL + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate error (status %d): %s", resp.StatusCode, string(body))
	}

	translated, err := parseResponse(body)
	if err != nil {
		return "", err
	}
	return translated, nil
}

// parseResponse extracts the translated text from the endpoint's
// untyped nested-array payload. The first element is a list of
// segments; each segment's first element is a translated sentence.
func parseResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("translate: empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var sentence string
		if err := json.Unmarshal(seg[0], &sentence); err != nil {
			return "", fmt.Errorf("decode segment text: %w", err)
		}
		sb.WriteString(sentence)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("translate: no translation in response")
	}
	return sb.String(), nil
}

// Close releases resources.
func (t *Translator) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

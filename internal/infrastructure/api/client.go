// Package api binds the dealer platform's REST endpoints. Every response is
// wrapped in the platform envelope {success, data?, message?}; the Client
// decodes it once so gateways only deal in typed payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/pkg/events"
	"github.com/evamobilya/dealer-client/internal/pkg/metrics"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the shared HTTP layer under every gateway. A 401 on an
// authenticated request is published to the expiry bus so all listeners can
// clear their state, the way the browser client's global fetch hook forced a
// logout.
type Client struct {
	baseURL string
	http    *http.Client
	expiry  *events.ExpiryBus
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, expiry *events.ExpiryBus, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		expiry:  expiry,
		log:     log,
	}
}

// do issues one request and decodes the envelope. It returns the envelope
// message (useful for logout and mutation acknowledgements) and unmarshals
// the data object into out when out is non-nil.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, body, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("%s: marshal request: %w", endpoint, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		c.log.Warn().Err(err).Str("endpoint", endpoint).Str("request_id", requestID).Msg("request failed")
		return "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Expired or rejected token on an authenticated call. The login
	// endpoint also answers 401 for bad credentials, so the signal only
	// counts when a token was attached.
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "session_expired").Inc()
		metrics.SessionExpiriesTotal.Inc()
		c.log.Info().Str("endpoint", endpoint).Str("request_id", requestID).Msg("token rejected, forcing session clear")
		c.expiry.Publish()
		return "", domain.ErrSessionExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return "", fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "api_error").Inc()
		return "", fmt.Errorf("%s %s: decode envelope (status %d): %w", method, path, resp.StatusCode, err)
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "api_error").Inc()
		c.log.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode).Str("message", env.Message).Msg("api rejected request")
		return "", &domain.APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			metrics.APIRequestsTotal.WithLabelValues(endpoint, "api_error").Inc()
			return "", fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}

	metrics.APIRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return env.Message, nil
}

package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dharma/internal/shared/config"
)

// GatewaySender delivers one SMS through the external HTTP gateway.
type GatewaySender interface {
	Send(ctx context.Context, mobile, message string) error
}

type gatewayPayload struct {
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}

type httpGatewaySender struct {
	url        string
	client     *http.Client
	maxRetries int
	backoff    time.Duration
}

func NewHTTPGatewaySender(cfg *config.Config) GatewaySender {
	return &httpGatewaySender{
		url: cfg.SMS.GatewayURL,
		client: &http.Client{
			Timeout: cfg.SMS.RequestTimeout,
		},
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

func (s *httpGatewaySender) Send(ctx context.Context, mobile, message string) error {
	if s.url == "" {
		return fmt.Errorf("sms gateway url not configured")
	}

	body, err := json.Marshal(gatewayPayload{Mobile: mobile, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal gateway payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.backoff * time.Duration(1<<(attempt-1))):
			}
		}

		lastErr = s.post(ctx, body)
		if lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("sms gateway delivery failed after %d attempts: %w", s.maxRetries+1, lastErr)
}

func (s *httpGatewaySender) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("gateway returned status %d", resp.StatusCode)
}

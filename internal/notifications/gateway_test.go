package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dharma/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSender(url string) GatewaySender {
	cfg := &config.Config{}
	cfg.SMS.GatewayURL = url
	cfg.SMS.RequestTimeout = 2 * time.Second

	sender := NewHTTPGatewaySender(cfg).(*httpGatewaySender)
	sender.backoff = time.Millisecond
	return sender
}

func TestGatewaySend_PostsMobileAndMessage(t *testing.T) {
	var got gatewayPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := newSender(server.URL)

	err := sender.Send(context.Background(), "9876543210", "Your booking is confirmed")
	require.NoError(t, err)

	assert.Equal(t, "9876543210", got.Mobile)
	assert.Equal(t, "Your booking is confirmed", got.Message)
}

func TestGatewaySend_RetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := newSender(server.URL)

	err := sender.Send(context.Background(), "9876543210", "retry me")
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGatewaySend_FailsAfterRetriesExhausted(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := newSender(server.URL)

	err := sender.Send(context.Background(), "9876543210", "doomed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestGatewaySend_UnconfiguredURL(t *testing.T) {
	sender := newSender("")

	err := sender.Send(context.Background(), "9876543210", "no gateway")
	assert.Error(t, err)
}

func TestGatewaySend_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := newSender(server.URL).(*httpGatewaySender)
	sender.backoff = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := sender.Send(ctx, "9876543210", "cancelled")
	assert.ErrorIs(t, err, context.Canceled)
}

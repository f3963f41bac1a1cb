package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.VerificationEvent{
		RequestID: "req-1",
		UserID:    "user-1",
		Email:     "a@x.com",
		Token:     "tok",
		IssuedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishVerificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])
	assert.NotContains(t, received.Message.Attributes, "token")

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.VerificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishVerificationEvent(context.Background(), &service.VerificationEvent{UserID: "u"})
	assert.ErrorContains(t, err, "502")
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	logger := newDiscardLogger()
	ctx := context.Background()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishVerificationEvent(ctx, &service.VerificationEvent{UserID: "u"}))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:1"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, logger)
	assert.ErrorContains(t, err, "project ID")

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, logger)
	assert.ErrorContains(t, err, "topic ID")

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.ErrorContains(t, err, "unknown pubsub provider")
}

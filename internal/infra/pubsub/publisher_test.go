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

	"myetician/config"
	"myetician/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.LogEvent{
		RequestID:  "req-1",
		Type:       service.EventMealLogged,
		UserID:     "user-1",
		MealID:     "meal-1",
		Date:       "2024-03-15",
		Calories:   420,
		OccurredAt: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "meal.logged", received.Message.Attributes["type"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])
	assert.Equal(t, "2024-03-15", received.Message.Attributes["date"])
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := DecodeEvent(&received)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestDecodeEvent_Rejects(t *testing.T) {
	encode := func(v string) string { return base64.StdEncoding.EncodeToString([]byte(v)) }

	tests := map[string]string{
		"not base64":   "%%%",
		"not json":     encode("nope"),
		"missing type": encode(`{"user_id":"user-1"}`),
		"missing user": encode(`{"type":"meal.logged"}`),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var msg PushMessage
			msg.Message.Data = data

			_, err := DecodeEvent(&msg)
			assert.Error(t, err)
		})
	}
}

func TestNewPushMessage_Attributes(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.FixedZone("CET", 3600))
	msg, err := newPushMessage(&service.LogEvent{Type: service.EventProfileSaved, UserID: "user-1"}, "sub", now)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"type": "profile.saved", "user_id": "user-1"}, msg.Message.Attributes)
	assert.Equal(t, "2024-03-15T08:00:00Z", msg.Message.PublishTime)
	assert.Equal(t, "sub", msg.Subscription)
}

func TestLocalHTTPPublisher_PublishRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())

	err := publisher.Publish(context.Background(), &service.LogEvent{Type: service.EventMealDeleted, UserID: "u"})
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "noop", cfg: &config.PubSubConfig{Provider: "noop"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.Publish(context.Background(), &service.LogEvent{Type: service.EventProfileSaved, UserID: "u"}))
	assert.NoError(t, publisher.Close())
}

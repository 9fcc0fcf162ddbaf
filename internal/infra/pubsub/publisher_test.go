package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mandoob/config"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:      "req-1",
		EventID:        "evt-1",
		Type:           constants.EventOrderExtracted,
		UserID:         "user-1",
		OrderIDs:       []string{"order-1"},
		OrderReference: "ORDER-1a2b3c4d",
		AppName:        "Talabat",
		PickupAddress:  "restaurant a",
		DropoffAddress: "customer address b",
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.EventOrderExtracted, received.Message.Attributes["type"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, *sampleEvent(), event)
}

func newFastLocalPublisher(url string) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint:   url,
		httpClient: http.DefaultClient,
		logger:     discardLogger(),
		retryDelay: time.Millisecond,
	}
}

func TestLocalHTTPPublisher_Retries(t *testing.T) {
	tests := []struct {
		name     string
		statuses []int
		attempts int
		wantErr  string
	}{
		{
			name:     "recovers after a transient failure",
			statuses: []int{http.StatusServiceUnavailable, http.StatusOK},
			attempts: 2,
		},
		{
			name:     "gives up after the last attempt",
			statuses: []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable},
			attempts: localMaxAttempts,
			wantErr:  "503",
		},
		{
			name:     "client errors are not retried",
			statuses: []int{http.StatusBadRequest},
			attempts: 1,
			wantErr:  "400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := int(calls.Add(1)) - 1
				w.WriteHeader(tt.statuses[min(n, len(tt.statuses)-1)])
			}))
			defer server.Close()

			err := newFastLocalPublisher(server.URL).PublishOrderEvent(context.Background(), sampleEvent())

			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
			assert.Equal(t, int32(tt.attempts), calls.Load())
		})
	}
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)

	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, topic: "order-events", logger: discardLogger()}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte("user-1"), msg.Key)

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "evt-1", event.EventID)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, constants.EventOrderExtracted, headers["type"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	publisher := &kafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, logger: discardLogger()}

	err := publisher.PublishOrderEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "broker down")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8001/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID"},
		{name: "kafka", pubsub: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "order-events"}},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: "kafka", KafkaTopic: "order-events"}, wantErr: "kafka brokers"},
		{name: "kafka without topic", pubsub: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: []string{"localhost:9092"}}, wantErr: "kafka topic"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "sqs"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.pubsub == nil || tt.pubsub.Provider == "" {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
			}
		})
	}
}

type stubPublisher struct {
	err    error
	closed bool
}

func (s *stubPublisher) PublishOrderEvent(context.Context, *service.OrderEvent) error {
	return s.err
}

func (s *stubPublisher) Close() error {
	s.closed = true

	return nil
}

func TestInstrumentedPublisher(t *testing.T) {
	ok := metrics.EventsPublished.WithLabelValues("stub", resultOK)
	failed := metrics.EventsPublished.WithLabelValues("stub", resultError)
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	next := &stubPublisher{}
	publisher := instrument("stub", next, discardLogger())

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
	next.err = errors.New("broker down")
	require.Error(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())

	assert.InDelta(t, okBefore+1, testutil.ToFloat64(ok), 1e-9)
	assert.InDelta(t, failedBefore+1, testutil.ToFloat64(failed), 1e-9)
	assert.True(t, next.closed)
}

package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"mandoob/config"
	"mandoob/internal/delivery"
	"mandoob/internal/delivery/worker/handler"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	consumerGroupID   = "mandoob-notifier"
	maxProcessRetries = 3
	retryBackoff      = time.Second
)

// eventProcessor is the part of handler.PushHandler the consumer drives.
type eventProcessor interface {
	ProcessEvent(ctx context.Context, requestID string, event *service.OrderEvent) error
}

// messageReader is the part of kafka.Reader used by the consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader    messageReader
	processor eventProcessor
	logger    *slog.Logger
	backoff   time.Duration
	stopCtx   context.Context
	cancel    context.CancelFunc
	started   atomic.Bool
	done      chan struct{}
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewKafkaConsumer consumes order events from Kafka when pubsub.provider is kafka.
// With any other provider it returns a delivery that exits immediately.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return disabledDelivery{}, nil
	}
	if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
		return nil, errors.New("kafka brokers and topic are required for kafka provider")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: consumerGroupID,
	})

	consumer := newKafkaConsumer(reader, params.PushHandler, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, processor eventProcessor, logger *slog.Logger) *kafkaConsumer {
	stopCtx, cancel := context.WithCancel(context.Background())

	return &kafkaConsumer{
		reader:    reader,
		processor: processor,
		logger:    logger,
		backoff:   retryBackoff,
		stopCtx:   stopCtx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// Serve fetches messages until the consumer is stopped.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.started.Store(true)
	defer close(k.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(k.stopCtx, cancel)()

	k.logger.Info("Starting Kafka consumer", slog.String("group_id", consumerGroupID))

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "fetch kafka message")
		}

		k.handle(ctx, msg)

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			k.logger.Warn("[Kafka] Failed to commit message",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle processes one message. Retryable failures are retried in place with a fixed backoff;
// after that the message is committed so one poisoned event cannot stall the partition.
func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		k.logger.Error("[Kafka] Dropping undecodable message",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := headerValue(msg.Headers, "request_id")
	for attempt := 1; attempt <= maxProcessRetries; attempt++ {
		err := k.processor.ProcessEvent(ctx, requestID, &event)
		if err == nil || !handler.IsRetryableError(err) {
			return
		}

		if attempt == maxProcessRetries {
			k.logger.Error("[Kafka] Giving up on event",
				slog.String("event_id", event.EventID),
				slog.Int("attempts", attempt),
			)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(k.backoff):
		}
	}
}

func (k *kafkaConsumer) stop(ctx context.Context) error {
	k.cancel()
	if k.started.Load() {
		select {
		case <-k.done:
		case <-ctx.Done():
		}
	}

	k.logger.Info("Closing Kafka consumer")

	return errors.WithStack(k.reader.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

type disabledDelivery struct{}

func (disabledDelivery) Serve(context.Context) error { return nil }

package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mandoob/config"
	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// fcmBatchSize is the FCM multicast limit.
const fcmBatchSize = 500

// ErrInvalidEvent marks events that can never be processed, such as a malformed user ID or an unknown type.
var ErrInvalidEvent = errors.New("invalid order event")

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether a failed event should be delivered again.
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns order events into device pushes.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(req *http.Request) error
	logger         *slog.Logger
	pushSvc        service.PushService
	deviceRepo     repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PushSvc    service.PushService
	DeviceRepo repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local and kafka transports do not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		pushSvc:        params.PushSvc,
		deviceRepo:     params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks the broker to retry, 400 rejects a malformed message, 200 acknowledges everything else.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > X-Request-Id header
	requestID := pushMsg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	err = h.ProcessEvent(ctx, requestID, &event)
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, ErrInvalidEvent):
		return c.NoContent(http.StatusBadRequest)
	case IsRetryableError(err):
		return c.NoContent(http.StatusServiceUnavailable)
	default:
		return c.NoContent(http.StatusOK)
	}
}

// ProcessEvent pushes one order event to the courier's active devices.
// An empty requestID gets a fresh one so every event is traceable in logs.
func (h *PushHandler) ProcessEvent(ctx context.Context, requestID string, event *service.OrderEvent) error {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("user_id", event.UserID),
	)

	if err := h.processEvent(ctx, reqLogger, event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryableError(err)),
		)

		return err
	}

	return nil
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.OrderEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(ErrInvalidEvent, "user_id %q", event.UserID)
	}

	title, body, ok := pushContent(event)
	if !ok {
		return errors.Wrapf(ErrInvalidEvent, "type %q", event.Type)
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if len(devices) == 0 {
		logger.Info("[Worker] No active devices for courier", slog.String("user_id", event.UserID))

		return nil
	}

	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceByToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	sent, failed, invalidTokens := h.sendBatched(ctx, logger, tokens, title, body, pushData(event))
	h.cleanupInvalidTokens(ctx, logger, invalidTokens, deviceByToken)

	logger.Info("[Worker] Order event pushed",
		slog.String("event_id", event.EventID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// pushContent renders the notification text for an event type.
func pushContent(event *service.OrderEvent) (title, body string, ok bool) {
	switch event.Type {
	case constants.EventOrderExtracted:
		title = "New order"
		if event.AppName != "" {
			title = "New " + event.AppName + " order"
		}
		body = event.OrderReference
		if event.PickupAddress != "" && event.DropoffAddress != "" {
			body = fmt.Sprintf("%s: pickup at %s, drop off at %s", event.OrderReference, event.PickupAddress, event.DropoffAddress)
		}

		return title, body, true

	case constants.EventCombinationsGenerated:
		count := len(event.CombinationIDs)
		body = fmt.Sprintf("%d new combinations for your pending orders", count)
		if count == 1 {
			body = "1 new combination for your pending orders"
		}

		return "Order combinations ready", body, true
	}

	return "", "", false
}

func pushData(event *service.OrderEvent) map[string]string {
	data := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
	}
	if len(event.OrderIDs) > 0 {
		data["order_ids"] = strings.Join(event.OrderIDs, ",")
	}
	if len(event.CombinationIDs) > 0 {
		data["combination_ids"] = strings.Join(event.CombinationIDs, ",")
	}
	if event.OrderReference != "" {
		data["order_reference"] = event.OrderReference
	}

	return data
}

// sendBatched sends in FCM-sized batches. A failed batch counts every token as failed.
func (h *PushHandler) sendBatched(ctx context.Context, logger *slog.Logger, tokens []string, title, body string, data map[string]string) (sent, failed int, invalidTokens []string) {
	for idx := 0; idx < len(tokens); idx += fcmBatchSize {
		batch := tokens[idx:min(idx+fcmBatchSize, len(tokens))]

		successCount, failureCount, batchInvalid, err := h.pushSvc.SendBatchPush(ctx, batch, title, body, data)
		if err != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	metrics.PushesSent.WithLabelValues("sent").Add(float64(sent))
	metrics.PushesSent.WithLabelValues("failed").Add(float64(failed))

	return sent, failed, invalidTokens
}

// cleanupInvalidTokens removes devices whose FCM token was rejected as unregistered.
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, logger *slog.Logger, invalidTokens []string, deviceByToken map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}

		if err := h.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			logger.Warn("[Worker] Failed to delete invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mandoob/config"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/service"
	mockRepo "mandoob/internal/mocks/repository"
	mockSvc "mandoob/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	handler    *PushHandler
	pushSvc    *mockSvc.MockPushService
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	pushSvc := mockSvc.NewMockPushService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushSvc:    pushSvc,
		DeviceRepo: deviceRepo,
	})

	return pushHandlerFixtures{handler: h, pushSvc: pushSvc, deviceRepo: deviceRepo}
}

func pushRequest(t *testing.T, event any) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{"request_id": "req-123"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func (fx pushHandlerFixtures) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = fx.handler.HandlePush(c)

	return rec
}

func extractedEvent(userID uuid.UUID) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:        uuid.New().String(),
		Type:           constants.EventOrderExtracted,
		UserID:         userID.String(),
		OrderIDs:       []string{uuid.New().String()},
		OrderReference: "ORDER-1a2b3c4d",
		AppName:        "Talabat",
		PickupAddress:  "restaurant a",
		DropoffAddress: "customer address b",
	}
}

func TestPushHandler_HandlePush_OrderExtracted(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	userID := uuid.New()
	stale := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "stale-token", IsActive: true}
	fresh := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "fresh-token", IsActive: true}
	event := extractedEvent(userID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{stale, fresh}, nil)
	fx.pushSvc.EXPECT().
		SendBatchPush(mock.Anything, []string{"stale-token", "fresh-token"},
			"New Talabat order",
			"ORDER-1a2b3c4d: pickup at restaurant a, drop off at customer address b",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["type"] == constants.EventOrderExtracted && data["order_ids"] == event.OrderIDs[0]
			})).
		Return(1, 1, []string{"stale-token"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, stale.ID).Return(nil)

	rec := fx.serve(pushRequest(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_CombinationsGenerated(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	userID := uuid.New()
	event := &service.OrderEvent{
		EventID:        uuid.New().String(),
		Type:           constants.EventCombinationsGenerated,
		UserID:         userID.String(),
		CombinationIDs: []string{uuid.New().String(), uuid.New().String()},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), FCMToken: "token"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatchPush(mock.Anything, []string{"token"}, "Order combinations ready", "2 new combinations for your pending orders", mock.Anything).
		Return(1, 0, nil, nil)

	rec := fx.serve(pushRequest(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoDevices(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{}, nil)

	rec := fx.serve(pushRequest(t, extractedEvent(userID)))

	assert.Equal(t, http.StatusOK, rec.Code)
	fx.pushSvc.AssertNotCalled(t, "SendBatchPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPushHandler_HandlePush_RepositoryFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, errors.New("connection refused"))

	rec := fx.serve(pushRequest(t, extractedEvent(userID)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_SendFailureIsAcknowledged(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), FCMToken: "token"}}, nil)
	fx.pushSvc.EXPECT().SendBatchPush(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	rec := fx.serve(pushRequest(t, extractedEvent(userID)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadPayloads(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "not json",
			req: func(*testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{"))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

				return req
			},
		},
		{
			name: "data not base64",
			req: func(*testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

				return req
			},
		},
		{
			name: "malformed user id",
			req: func(t *testing.T) *http.Request {
				return pushRequest(t, &service.OrderEvent{Type: constants.EventOrderExtracted, UserID: "courier-7"})
			},
		},
		{
			name: "unknown event type",
			req: func(t *testing.T) *http.Request {
				return pushRequest(t, &service.OrderEvent{Type: "order.deleted", UserID: uuid.New().String()})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, nil)

			rec := fx.serve(tt.req(t))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	fx := createTestPushHandler(t, cfg)
	require.True(t, fx.handler.verifyPushAuth)

	fx.handler.verifyToken = func(*http.Request) error { return errors.New("token expired") }

	rec := fx.serve(pushRequest(t, extractedEvent(uuid.New())))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop
	fx := createTestPushHandler(t, cfg)

	assert.False(t, fx.handler.verifyPushAuth)
}

func TestPushHandler_ProcessEvent_RetryableError(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, context.DeadlineExceeded)

	err := fx.handler.ProcessEvent(context.Background(), "", extractedEvent(userID))

	require.Error(t, err)
	assert.True(t, IsRetryableError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

package handler

import (
	"net/http"
	"testing"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	mockUC "mandoob/internal/mocks/usecase"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUC.MockNotificationUsecase) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC}), notificationUC
}

func TestNotificationHandler_SimulateNotification(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	e := newEcho()

	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID, AppName: "Talabat", IsProcessed: true}
	order := &entity.Order{ID: uuid.New(), UserID: userID, OrderReference: "ORDER-1a2b3c4d"}

	notificationUC.EXPECT().
		SimulateNotification(mock.Anything, userID, &usecase.SimulateNotificationInput{
			AppName: "Talabat",
			Title:   "New order",
			Content: "Pickup from Restaurant A, deliver to Customer Address B",
		}).
		Return(&usecase.SimulateNotificationOutput{Notification: notification, Order: order}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/notifications/simulate",
		`{"app_name":"Talabat","title":"New order","content":"Pickup from Restaurant A, deliver to Customer Address B"}`, userID)

	require.NoError(t, h.SimulateNotification(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	output := decodeData[usecase.SimulateNotificationOutput](t, rec)
	assert.True(t, output.Notification.IsProcessed)
	require.NotNil(t, output.Order)
	assert.Equal(t, "ORDER-1a2b3c4d", output.Order.OrderReference)
}

func TestNotificationHandler_SimulateNotification_NoOrder(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	e := newEcho()

	userID := uuid.New()
	notificationUC.EXPECT().SimulateNotification(mock.Anything, userID, mock.Anything).
		Return(&usecase.SimulateNotificationOutput{Notification: &entity.Notification{ID: uuid.New()}}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/notifications/simulate",
		`{"app_name":"Careem","title":"Promo","content":"50% off your next ride"}`, userID)

	require.NoError(t, h.SimulateNotification(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"order"`)
}

func TestNotificationHandler_SimulateNotification_UnknownApp(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	e := newEcho()

	userID := uuid.New()
	notificationUC.EXPECT().SimulateNotification(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrUnknownDeliveryApp.WrapMessage("Glovo"))

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/notifications/simulate",
		`{"app_name":"Glovo","title":"New order","content":"pickup from A"}`, userID)

	require.NoError(t, h.SimulateNotification(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_SimulateNotification_MissingContent(t *testing.T) {
	h, _ := newTestNotificationHandler(t)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/notifications/simulate",
		`{"app_name":"Talabat","title":"New order"}`, uuid.New())

	require.NoError(t, h.SimulateNotification(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", decodeDetails(t, decodeEnvelope(t, rec))["content"])
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	e := newEcho()

	userID := uuid.New()
	notificationUC.EXPECT().ListNotifications(mock.Anything, userID).
		Return([]*entity.Notification{{ID: uuid.New(), UserID: userID}}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/notifications", "", userID)

	require.NoError(t, h.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Notification](t, rec), 1)
}

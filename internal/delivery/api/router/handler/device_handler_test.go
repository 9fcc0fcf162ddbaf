package handler

import (
	"log/slog"
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

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: slog.New(slog.DiscardHandler)}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	e := newEcho()

	userID := uuid.New()
	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "fcm-token", DeviceID: "pixel-8", Platform: "android"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "fcm-token", IsActive: true}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/devices",
		`{"fcm_token":"fcm-token","device_id":"pixel-8","platform":"android"}`, userID)

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_RegisterDevice_BadPlatform(t *testing.T) {
	h, _ := newTestDeviceHandler(t)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/devices",
		`{"fcm_token":"fcm-token","device_id":"pixel-8","platform":"symbian"}`, uuid.New())

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "oneof", decodeDetails(t, decodeEnvelope(t, rec))["platform"])
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	e := newEcho()

	userID := uuid.New()
	deviceID := uuid.New()
	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "new-token").Return(nil)

	c, rec := newJSONContext(e, http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", `{"fcm_token":"new-token"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.UpdateFCMToken(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	e := newEcho()

	userID := uuid.New()
	deviceID := uuid.New()
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.DeactivateDevice(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeviceHandler_DeactivateDevice_BadID(t *testing.T) {
	h, _ := newTestDeviceHandler(t)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/devices/not-a-uuid", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.DeactivateDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_DeactivateDevice_NotOwned(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	e := newEcho()

	userID := uuid.New()
	deviceID := uuid.New()
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).
		Return(domainerrors.ErrDeviceNotFound.WrapMessage("owned by someone else"))

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.DeactivateDevice(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceHandler_GetUserDevices(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	e := newEcho()

	userID := uuid.New()
	deviceUC.EXPECT().GetUserDevices(mock.Anything, userID).Return([]*entity.UserDevice{{ID: uuid.New()}}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/devices", "", userID)

	require.NoError(t, h.GetUserDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

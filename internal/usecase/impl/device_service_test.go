package impl

import (
	"context"
	"testing"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	mockRepo "mandoob/internal/mocks/repository"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newDiscardLogger()}), deviceRepo
}

func courierPhone(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		DeviceID: "pixel-7-abc",
		Platform: "android",
		IsActive: true,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "token-2", DeviceID: "pixel-7-abc", Platform: "android"}

	t.Run("first registration creates the device", func(t *testing.T) {
		svc, repo := newTestDeviceService(t)
		repo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)

		var created *entity.UserDevice
		repo.EXPECT().
			CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
			Run(func(_ context.Context, device *entity.UserDevice) { created = device }).
			Return(nil)

		device, err := svc.RegisterDevice(ctx, userID, info)

		require.NoError(t, err)
		assert.Same(t, created, device)
		assert.NotEqual(t, uuid.Nil, device.ID)
		assert.Equal(t, userID, device.UserID)
		assert.Equal(t, "token-2", device.FCMToken)
		assert.Equal(t, "android", device.Platform)
		assert.True(t, device.IsActive)
	})

	t.Run("known hardware id refreshes the token", func(t *testing.T) {
		svc, repo := newTestDeviceService(t)
		existing := courierPhone(userID, "token-1")
		refreshed := *existing
		refreshed.FCMToken = "token-2"

		repo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
		repo.EXPECT().UpdateFCMToken(ctx, existing.ID, "token-2").Return(nil)
		repo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(&refreshed, nil)

		device, err := svc.RegisterDevice(ctx, userID, info)

		require.NoError(t, err)
		assert.Equal(t, "token-2", device.FCMToken)
		repo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
	})

	t.Run("duplicate insert is a conflict", func(t *testing.T) {
		svc, repo := newTestDeviceService(t)
		repo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		repo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := svc.RegisterDevice(ctx, userID, info)

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("lookup failure is passed through", func(t *testing.T) {
		svc, repo := newTestDeviceService(t)
		repo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("pool exhausted"))

		device, err := svc.RegisterDevice(ctx, userID, info)

		require.Error(t, err)
		assert.Nil(t, device)
		assert.Contains(t, err.Error(), "pool exhausted")
	})
}

func TestDeviceService_OwnershipChecks(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	phone := courierPhone(owner, "token-1")

	tests := []struct {
		name   string
		caller uuid.UUID
		found  *entity.UserDevice
		repErr error
		// deactivate exercises DeactivateDevice instead of UpdateFCMToken
		deactivate bool
	}{
		{
			name:   "update token of missing device",
			caller: owner,
			repErr: repository.ErrDeviceNotFound,
		},
		{
			name:   "update token of another courier's device",
			caller: uuid.New(),
			found:  phone,
		},
		{
			name:       "deactivate another courier's device",
			caller:     uuid.New(),
			found:      phone,
			deactivate: true,
		},
		{
			name:       "deactivate missing device",
			caller:     owner,
			repErr:     repository.ErrDeviceNotFound,
			deactivate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestDeviceService(t)
			repo.EXPECT().FindDeviceByID(ctx, phone.ID).Return(tt.found, tt.repErr)

			var err error
			if tt.deactivate {
				err = svc.DeactivateDevice(ctx, tt.caller, phone.ID)
			} else {
				err = svc.UpdateFCMToken(ctx, tt.caller, phone.ID, "token-9")
			}

			assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
			repo.AssertNotCalled(t, "UpdateFCMToken", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "DeleteDevice", mock.Anything, mock.Anything)
		})
	}
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	svc, repo := newTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := courierPhone(userID, "token-1")
	repo.EXPECT().FindDeviceByID(ctx, phone.ID).Return(phone, nil)
	repo.EXPECT().UpdateFCMToken(ctx, phone.ID, "token-9").Return(nil)

	require.NoError(t, svc.UpdateFCMToken(ctx, userID, phone.ID, "token-9"))
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	svc, repo := newTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := courierPhone(userID, "token-1")
	repo.EXPECT().FindDeviceByID(ctx, phone.ID).Return(phone, nil)
	repo.EXPECT().DeleteDevice(ctx, phone.ID).Return(nil)

	require.NoError(t, svc.DeactivateDevice(ctx, userID, phone.ID))
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	svc, repo := newTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := []*entity.UserDevice{courierPhone(userID, "token-1")}
	repo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(active, nil)

	devices, err := svc.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, active, devices)
}

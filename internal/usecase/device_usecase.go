package usecase

import (
	"context"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is the registration body a courier's phone sends.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase manages the push targets the notifier fans order events out to.
// Every method is scoped to the calling courier; foreign devices look missing.
type DeviceUsecase interface {
	// RegisterDevice refreshes the token when DeviceID is already known for the courier.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

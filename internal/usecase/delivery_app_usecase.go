package usecase

import (
	"context"

	"mandoob/internal/domain/entity"
)

// DeliveryAppUsecase exposes the catalog of supported delivery apps.
type DeliveryAppUsecase interface {
	// ListDeliveryApps returns the catalog, seeding the default apps on first use.
	ListDeliveryApps(ctx context.Context) ([]*entity.DeliveryApp, error)

	// FindByName resolves an app by display name, case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.DeliveryApp, error)
}

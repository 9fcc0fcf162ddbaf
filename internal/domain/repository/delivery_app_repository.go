package repository

import (
	"context"
	"errors"

	"mandoob/internal/domain/entity"
)

// ErrDeliveryAppNotFound is returned when no app matches the requested name.
var ErrDeliveryAppNotFound = errors.New("delivery app not found")

// DeliveryAppRepository stores the catalog of partner delivery apps.
type DeliveryAppRepository interface {
	// ListApps returns every app in the catalog ordered by name.
	ListApps(ctx context.Context) ([]*entity.DeliveryApp, error)

	// CreateApps inserts the given apps in one statement.
	CreateApps(ctx context.Context, apps []*entity.DeliveryApp) error

	// FindAppByName looks up an app by name, ignoring case.
	FindAppByName(ctx context.Context, name string) (*entity.DeliveryApp, error)
}

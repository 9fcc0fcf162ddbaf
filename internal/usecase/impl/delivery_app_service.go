package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deliveryAppService struct {
	appRepo repository.DeliveryAppRepository
	logger  *slog.Logger
}

// DeliveryAppServiceParams holds dependencies for DeliveryAppService, injected by Fx.
type DeliveryAppServiceParams struct {
	fx.In

	AppRepo repository.DeliveryAppRepository
	Logger  *slog.Logger
}

// NewDeliveryAppService creates the delivery app catalog service.
func NewDeliveryAppService(params DeliveryAppServiceParams) usecase.DeliveryAppUsecase {
	return &deliveryAppService{
		appRepo: params.AppRepo,
		logger:  params.Logger,
	}
}

func (srv *deliveryAppService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDeliveryApps returns the catalog, seeding the built-in apps when it is empty.
func (srv *deliveryAppService) ListDeliveryApps(ctx context.Context) ([]*entity.DeliveryApp, error) {
	apps, err := srv.appRepo.ListApps(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery apps")
	}
	if len(apps) > 0 {
		return apps, nil
	}

	defaults := entity.DefaultDeliveryApps()
	now := time.Now()
	for _, app := range defaults {
		app.ID = uuid.New()
		app.IsActive = true
		app.CreatedAt = now
	}

	// Concurrent first calls may both seed; the repository ignores name conflicts.
	if err := srv.appRepo.CreateApps(ctx, defaults); err != nil {
		return nil, errors.Wrap(err, "failed to seed delivery apps")
	}

	srv.log(ctx).Info("Seeded default delivery apps", slog.Int("count", len(defaults)))

	apps, err = srv.appRepo.ListApps(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery apps")
	}

	return apps, nil
}

// FindByName resolves an app by display name, case-insensitively.
func (srv *deliveryAppService) FindByName(ctx context.Context, name string) (*entity.DeliveryApp, error) {
	app, err := srv.appRepo.FindAppByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryAppNotFound) {
			return nil, domainerrors.ErrUnknownDeliveryApp.WrapMessage(name)
		}

		return nil, errors.Wrap(err, "failed to find delivery app")
	}

	return app, nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/extraction"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/metrics"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const notificationListLimit = 50

type notificationService struct {
	txManager        repository.TransactionManager
	appRepo          repository.DeliveryAppRepository
	notificationRepo repository.NotificationRepository
	extractor        *extraction.Extractor
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AppRepo          repository.DeliveryAppRepository
	NotificationRepo repository.NotificationRepository
	Extractor        *extraction.Extractor
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		appRepo:          params.AppRepo,
		notificationRepo: params.NotificationRepo,
		extractor:        params.Extractor,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SimulateNotification stores the notification and, when pickup and dropoff can be
// extracted, the derived order. The notification is kept even if no order results.
func (srv *notificationService) SimulateNotification(ctx context.Context, userID uuid.UUID, input *usecase.SimulateNotificationInput) (*usecase.SimulateNotificationOutput, error) {
	app, err := srv.appRepo.FindAppByName(ctx, input.AppName)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryAppNotFound) {
			return nil, domainerrors.ErrUnknownDeliveryApp.WrapMessage("delivery app " + input.AppName + " not found")
		}

		return nil, errors.Wrap(err, "failed to find delivery app")
	}

	notification := &entity.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		AppID:      app.ID,
		AppName:    app.Name,
		Title:      input.Title,
		Content:    input.Content,
		ReceivedAt: time.Now(),
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	order, err := srv.extractor.Extract(ctx, notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract order")
	}

	output := &usecase.SimulateNotificationOutput{Notification: notification}
	if order == nil {
		metrics.NotificationsSimulated.WithLabelValues(app.Name, metrics.OutcomeMissed).Inc()
		srv.log(ctx).Debug("No order found in notification",
			slog.String("notification_id", notification.ID.String()),
			slog.String("app", app.Name),
		)

		return output, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return errors.Wrap(repoFactory.NewNotificationRepository().MarkProcessed(ctx, userID, notification.ID), "failed to mark notification processed")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store extracted order")
	}

	notification.IsProcessed = true
	output.Order = order
	metrics.NotificationsSimulated.WithLabelValues(app.Name, metrics.OutcomeExtracted).Inc()

	srv.log(ctx).Info("Order extracted from notification",
		slog.String("notification_id", notification.ID.String()),
		slog.String("order_id", order.ID.String()),
		slog.String("order_reference", order.OrderReference),
	)

	srv.publishExtracted(ctx, order)

	return output, nil
}

// publishExtracted announces a new order. Failures are logged only; the order is already stored.
func (srv *notificationService) publishExtracted(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.NewString(),
		Type:           constants.EventOrderExtracted,
		UserID:         order.UserID.String(),
		OrderIDs:       []string{order.ID.String()},
		OrderReference: order.OrderReference,
		AppName:        order.AppName,
		PickupAddress:  order.Pickup.Address,
		DropoffAddress: order.Dropoff.Address,
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// ListNotifications returns the newest notifications first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByUser(ctx, userID, notificationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

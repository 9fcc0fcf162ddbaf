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
	"mandoob/internal/domain/service"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const orderListLimit = 50

type orderService struct {
	orderRepo repository.OrderRepository
	appRepo   repository.DeliveryAppRepository
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	AppRepo   repository.DeliveryAppRepository
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		appRepo:   params.AppRepo,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the newest orders first. An empty status lists every order.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Order, error) {
	var filter *entity.OrderStatus
	if status != "" {
		parsed, ok := entity.ParseOrderStatus(status)
		if !ok {
			return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(status)
		}
		filter = &parsed
	}

	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID, filter, orderListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CreateOrder stores an order typed in by the courier.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	app, err := srv.appRepo.FindAppByName(ctx, input.AppName)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryAppNotFound) {
			return nil, domainerrors.ErrUnknownDeliveryApp.WrapMessage("delivery app " + input.AppName + " not found")
		}

		return nil, errors.Wrap(err, "failed to find delivery app")
	}

	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New(),
		UserID:         userID,
		AppID:          app.ID,
		AppName:        app.Name,
		OrderReference: entity.NewOrderReference(),
		CustomerName:   input.CustomerName,
		Pickup:         toLocation(input.Pickup),
		Dropoff:        toLocation(input.Dropoff),
		PaymentAmount:  input.PaymentAmount,
		Status:         entity.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Manual order created",
		slog.String("order_id", order.ID.String()),
		slog.String("app", app.Name),
	)

	return order, nil
}

func toLocation(input usecase.LocationInput) entity.Location {
	return entity.Location{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   strings.TrimSpace(input.Address),
	}
}

// UpdateOrderStatus sets the order to any valid status.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, status string) (*entity.Order, error) {
	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(status)
	}

	return srv.setStatus(ctx, userID, orderID, parsed)
}

// AcceptOrder moves a single pending order to accepted.
func (srv *orderService) AcceptOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusPending {
		return nil, domainerrors.ErrOrderNotPending.WrapMessage("order is " + string(order.Status))
	}

	return srv.setStatus(ctx, userID, orderID, entity.OrderStatusAccepted)
}

// GenerateHandoffQR renders the QR code the courier shows at pickup.
func (srv *orderService) GenerateHandoffQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.findOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeSvc.GenerateOrderHandoffQR(order.ID, order.OrderReference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate handoff QR code")
	}

	return png, nil
}

// ConfirmHandoff starts the trip for the order carried by a scanned QR code.
func (srv *orderService) ConfirmHandoff(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Order, error) {
	orderID, err := srv.qrCodeSvc.ParseOrderHandoffQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Rejected handoff QR", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidHandoffQR.WrapMessage(err.Error())
	}

	return srv.setStatus(ctx, userID, orderID, entity.OrderStatusInProgress)
}

func (srv *orderService) setStatus(ctx context.Context, userID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := srv.orderRepo.UpdateOrderStatus(ctx, userID, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found or not owned by user")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", string(status)),
	)

	return srv.findOrder(ctx, userID, orderID)
}

func (srv *orderService) findOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not found or not owned by user")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

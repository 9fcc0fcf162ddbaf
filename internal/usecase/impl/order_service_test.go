package impl

import (
	"context"
	"testing"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	mockRepo "mandoob/internal/mocks/repository"
	mockSvc "mandoob/internal/mocks/service"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	appRepo   *mockRepo.MockDeliveryAppRepository
	qrCodeSvc *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	appRepo := mockRepo.NewMockDeliveryAppRepository(t)
	qrCodeSvc := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		AppRepo:   appRepo,
		QRCodeSvc: qrCodeSvc,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		appRepo:   appRepo,
		qrCodeSvc: qrCodeSvc,
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no filter", func(t *testing.T) {
		fx := createTestOrderService(t)
		expected := []*entity.Order{{ID: uuid.New(), UserID: userID}}
		fx.orderRepo.EXPECT().
			FindOrdersByUser(ctx, userID, (*entity.OrderStatus)(nil), 50).
			Return(expected, nil)

		orders, err := fx.service.ListOrders(ctx, userID, "")
		require.NoError(t, err)
		assert.Equal(t, expected, orders)
	})

	t.Run("status filter", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().
			FindOrdersByUser(ctx, userID, mock.MatchedBy(func(status *entity.OrderStatus) bool {
				return status != nil && *status == entity.OrderStatusAccepted
			}), 50).
			Return(nil, nil)

		_, err := fx.service.ListOrders(ctx, userID, "accepted")
		require.NoError(t, err)
	})

	t.Run("invalid filter", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.ListOrders(ctx, userID, "shipped")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	})
}

func TestOrderService_CreateOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	app := &entity.DeliveryApp{ID: uuid.New(), Name: "InDrive"}
	amount := 85.5
	input := &usecase.CreateOrderInput{
		AppName:       "indrive",
		Pickup:        usecase.LocationInput{Latitude: 30.04, Longitude: 31.23, Address: " Tahrir Square "},
		Dropoff:       usecase.LocationInput{Latitude: 30.06, Longitude: 31.22, Address: "Zamalek"},
		PaymentAmount: &amount,
	}

	fx.appRepo.EXPECT().FindAppByName(ctx, "indrive").Return(app, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, app.ID, order.AppID)
	assert.Equal(t, "InDrive", order.AppName)
	assert.Nil(t, order.NotificationID)
	assert.Equal(t, "Tahrir Square", order.Pickup.Address)
	assert.InDelta(t, 31.22, order.Dropoff.Longitude, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, &amount, order.PaymentAmount)
}

func TestOrderService_CreateOrder_UnknownApp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.appRepo.EXPECT().FindAppByName(ctx, "Glovo").Return(nil, repository.ErrDeliveryAppNotFound)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{AppName: "Glovo"})

	assert.ErrorIs(t, err, domainerrors.ErrUnknownDeliveryApp)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("any valid status", func(t *testing.T) {
		fx := createTestOrderService(t)
		updated := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPending}
		fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, userID, orderID, entity.OrderStatusPending).Return(nil)
		fx.orderRepo.EXPECT().FindOrderByID(ctx, userID, orderID).Return(updated, nil)

		order, err := fx.service.UpdateOrderStatus(ctx, userID, orderID, "pending")
		require.NoError(t, err)
		assert.Equal(t, updated, order)
	})

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateOrderStatus(ctx, userID, orderID, "Completed")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	})

	t.Run("missing or foreign order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().
			UpdateOrderStatus(ctx, userID, orderID, entity.OrderStatusCompleted).
			Return(repository.ErrOrderNotFound)

		_, err := fx.service.UpdateOrderStatus(ctx, userID, orderID, "completed")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().
			UpdateOrderStatus(ctx, userID, orderID, entity.OrderStatusCancelled).
			Return(errors.New("deadlock"))

		_, err := fx.service.UpdateOrderStatus(ctx, userID, orderID, "cancelled")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_AcceptOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("pending order", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().
			FindOrderByID(ctx, userID, orderID).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil).Once()
		fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, userID, orderID, entity.OrderStatusAccepted).Return(nil)
		fx.orderRepo.EXPECT().
			FindOrderByID(ctx, userID, orderID).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusAccepted}, nil).Once()

		order, err := fx.service.AcceptOrder(ctx, userID, orderID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusAccepted, order.Status)
	})

	t.Run("already in progress", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.orderRepo.EXPECT().
			FindOrderByID(ctx, userID, orderID).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusInProgress}, nil)

		_, err := fx.service.AcceptOrder(ctx, userID, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotPending)
	})
}

func TestOrderService_GenerateHandoffQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), OrderReference: "ORDER-1a2b3c4d"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, userID, order.ID).Return(order, nil)
	fx.qrCodeSvc.EXPECT().GenerateOrderHandoffQR(order.ID, "ORDER-1a2b3c4d").Return(png, nil)

	data, err := fx.service.GenerateHandoffQR(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestOrderService_ConfirmHandoff(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("valid code", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.qrCodeSvc.EXPECT().ParseOrderHandoffQR("qr-payload").Return(orderID, nil)
		fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, userID, orderID, entity.OrderStatusInProgress).Return(nil)
		fx.orderRepo.EXPECT().
			FindOrderByID(ctx, userID, orderID).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusInProgress}, nil)

		order, err := fx.service.ConfirmHandoff(ctx, userID, "qr-payload")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	})

	t.Run("garbage code", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.qrCodeSvc.EXPECT().ParseOrderHandoffQR("not-json").Return(uuid.Nil, errors.New("invalid QR data"))

		_, err := fx.service.ConfirmHandoff(ctx, userID, "not-json")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidHandoffQR)
	})
}

package impl

import (
	"context"
	"testing"

	"mandoob/internal/domain/combination"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	mockRepo "mandoob/internal/mocks/repository"
	mockSvc "mandoob/internal/mocks/service"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type combinationServiceFixtures struct {
	service         usecase.CombinationUsecase
	txManager       *mockRepo.MockTransactionManager
	orderRepo       *mockRepo.MockOrderRepository
	combinationRepo *mockRepo.MockCombinationRepository
	locker          *mockSvc.MockLocker
	publisher       *mockSvc.MockEventPublisher
}

func createTestCombinationService(t *testing.T) combinationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	combinationRepo := mockRepo.NewMockCombinationRepository(t)
	locker := mockSvc.NewMockLocker(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewCombinationService(CombinationServiceParams{
		TxManager:       txManager,
		OrderRepo:       orderRepo,
		CombinationRepo: combinationRepo,
		Generator:       combination.NewGenerator(combination.DefaultRules()),
		Locker:          locker,
		Publisher:       publisher,
		Config:          newTestConfig(30),
		Logger:          newDiscardLogger(),
	})

	return combinationServiceFixtures{
		service:         service,
		txManager:       txManager,
		orderRepo:       orderRepo,
		combinationRepo: combinationRepo,
		locker:          locker,
		publisher:       publisher,
	}
}

func (fx combinationServiceFixtures) expectLock(userID uuid.UUID) *bool {
	released := false
	fx.locker.EXPECT().
		Lock(mock.Anything, "combinations:"+userID.String()).
		Return(func(context.Context) error {
			released = true

			return nil
		}, nil)

	return &released
}

func pendingOrder(userID uuid.UUID, pickupLat, dropoffLat float64) *entity.Order {
	return &entity.Order{
		ID:      uuid.New(),
		UserID:  userID,
		Pickup:  entity.Location{Latitude: pickupLat, Longitude: 31.2357},
		Dropoff: entity.Location{Latitude: dropoffLat, Longitude: 31.2394},
		Status:  entity.OrderStatusPending,
	}
}

func TestCombinationService_GenerateCombinations(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	released := fx.expectLock(userID)

	near := pendingOrder(userID, 30.0444, 30.0566)
	alsoNear := pendingOrder(userID, 30.0450, 30.0570)
	farAway := pendingOrder(userID, 31.2001, 31.2100)

	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID, mock.MatchedBy(func(status *entity.OrderStatus) bool {
			return status != nil && *status == entity.OrderStatusPending
		}), 30).
		Return([]*entity.Order{near, alsoNear, farAway}, nil)

	fx.combinationRepo.EXPECT().
		CreateCombination(ctx, mock.AnythingOfType("*entity.OrderCombination")).
		Return(nil).Once()

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) { published = event }).
		Return(nil)

	combinations, err := fx.service.GenerateCombinations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, combinations, 1)
	assert.Equal(t, []uuid.UUID{near.ID, alsoNear.ID}, combinations[0].OrderIDs)
	assert.Equal(t, userID, combinations[0].UserID)
	assert.False(t, combinations[0].Accepted)
	assert.True(t, *released)

	require.NotNil(t, published)
	assert.Equal(t, constants.EventCombinationsGenerated, published.Type)
	assert.Equal(t, []string{combinations[0].ID.String()}, published.CombinationIDs)
}

func TestCombinationService_GenerateCombinations_NothingAdmitted(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectLock(userID)

	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID, mock.Anything, 30).
		Return([]*entity.Order{pendingOrder(userID, 30.0, 30.0), pendingOrder(userID, 31.0, 31.0)}, nil)

	combinations, err := fx.service.GenerateCombinations(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, combinations)
	assert.Empty(t, combinations)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCombinationService_GenerateCombinations_NotEnoughOrders(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	released := fx.expectLock(userID)

	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID, mock.Anything, 30).
		Return([]*entity.Order{pendingOrder(userID, 30.0444, 30.0566)}, nil)

	_, err := fx.service.GenerateCombinations(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotEnoughPendingOrders)
	assert.True(t, *released, "lock must be released on failure")
}

func TestCombinationService_GenerateCombinations_AlreadyRunning(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.locker.EXPECT().
		Lock(ctx, "combinations:"+userID.String()).
		Return(nil, service.ErrLockHeld)

	_, err := fx.service.GenerateCombinations(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrGenerationInProgress)
	fx.orderRepo.AssertNotCalled(t, "FindOrdersByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCombinationService_AcceptCombination(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	combo := &entity.OrderCombination{
		ID:       uuid.New(),
		UserID:   userID,
		OrderIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	fx.combinationRepo.EXPECT().FindCombinationByID(ctx, userID, combo.ID).Return(combo, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCombinationRepo := mockRepo.NewMockCombinationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewCombinationRepository().Return(txCombinationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	runInTx(fx.txManager, factory)

	txCombinationRepo.EXPECT().MarkAccepted(ctx, userID, combo.ID).Return(nil)
	txOrderRepo.EXPECT().
		UpdateOrdersStatus(ctx, userID, combo.OrderIDs, entity.OrderStatusAccepted).
		Return(int64(2), nil)

	accepted, err := fx.service.AcceptCombination(ctx, userID, combo.ID)

	require.NoError(t, err)
	assert.True(t, accepted.Accepted)
	assert.Equal(t, combo.OrderIDs, accepted.OrderIDs)
}

func TestCombinationService_AcceptCombination_AlreadyAccepted(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	combo := &entity.OrderCombination{
		ID:       uuid.New(),
		UserID:   userID,
		OrderIDs: []uuid.UUID{uuid.New(), uuid.New()},
		Accepted: true,
	}
	fx.combinationRepo.EXPECT().FindCombinationByID(ctx, userID, combo.ID).Return(combo, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCombinationRepo := mockRepo.NewMockCombinationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewCombinationRepository().Return(txCombinationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	runInTx(fx.txManager, factory)

	txCombinationRepo.EXPECT().MarkAccepted(ctx, userID, combo.ID).Return(nil).Once()
	// Orders moved on since the first accept; the cascade puts them back.
	txOrderRepo.EXPECT().
		UpdateOrdersStatus(ctx, userID, combo.OrderIDs, entity.OrderStatusAccepted).
		Return(int64(2), nil).Once()

	accepted, err := fx.service.AcceptCombination(ctx, userID, combo.ID)

	require.NoError(t, err)
	assert.True(t, accepted.Accepted)
	assert.Equal(t, combo.OrderIDs, accepted.OrderIDs)
}

func TestCombinationService_AcceptCombination_NotFound(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	combinationID := uuid.New()
	fx.combinationRepo.EXPECT().
		FindCombinationByID(ctx, userID, combinationID).
		Return(nil, repository.ErrCombinationNotFound)

	_, err := fx.service.AcceptCombination(ctx, userID, combinationID)

	assert.ErrorIs(t, err, domainerrors.ErrCombinationNotFound)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCombinationService_AcceptCombination_RollsBackOnOrderFailure(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	combo := &entity.OrderCombination{ID: uuid.New(), UserID: userID, OrderIDs: []uuid.UUID{uuid.New(), uuid.New()}}
	fx.combinationRepo.EXPECT().FindCombinationByID(ctx, userID, combo.ID).Return(combo, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCombinationRepo := mockRepo.NewMockCombinationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewCombinationRepository().Return(txCombinationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	runInTx(fx.txManager, factory)

	txCombinationRepo.EXPECT().MarkAccepted(ctx, userID, combo.ID).Return(nil)
	txOrderRepo.EXPECT().
		UpdateOrdersStatus(ctx, userID, combo.OrderIDs, entity.OrderStatusAccepted).
		Return(int64(0), errors.New("serialization failure"))

	accepted, err := fx.service.AcceptCombination(ctx, userID, combo.ID)

	require.Error(t, err)
	assert.Nil(t, accepted)
	assert.False(t, combo.Accepted)
}

func TestCombinationService_ListCombinations(t *testing.T) {
	fx := createTestCombinationService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.combinationRepo.EXPECT().FindCombinationsByUser(ctx, userID, 20).Return(nil, nil)

	_, err := fx.service.ListCombinations(ctx, userID)

	require.NoError(t, err)
}

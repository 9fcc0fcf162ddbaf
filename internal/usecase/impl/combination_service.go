package impl

import (
	"context"
	"log/slog"
	"strconv"

	"mandoob/config"
	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/combination"
	"mandoob/internal/domain/constants"
	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/metrics"
	"mandoob/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	combinationListLimit    = 20
	defaultPendingLimit     = 50
	generationLockKeyPrefix = "combinations:"
)

type combinationService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	combinationRepo repository.CombinationRepository
	generator       *combination.Generator
	locker          service.Locker
	publisher       service.EventPublisher
	pendingLimit    int
	logger          *slog.Logger
}

// CombinationServiceParams holds dependencies for CombinationService, injected by Fx.
type CombinationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	OrderRepo       repository.OrderRepository
	CombinationRepo repository.CombinationRepository
	Generator       *combination.Generator
	Locker          service.Locker
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCombinationService creates a new combination service instance
func NewCombinationService(params CombinationServiceParams) usecase.CombinationUsecase {
	pendingLimit := defaultPendingLimit
	if params.Config != nil && params.Config.Combination != nil && params.Config.Combination.PendingLimit > 0 {
		pendingLimit = params.Config.Combination.PendingLimit
	}

	return &combinationService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		combinationRepo: params.CombinationRepo,
		generator:       params.Generator,
		locker:          params.Locker,
		publisher:       params.Publisher,
		pendingLimit:    pendingLimit,
		logger:          params.Logger,
	}
}

func (srv *combinationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCombinations returns the newest combinations first.
func (srv *combinationService) ListCombinations(ctx context.Context, userID uuid.UUID) ([]*entity.OrderCombination, error) {
	combinations, err := srv.combinationRepo.FindCombinationsByUser(ctx, userID, combinationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list combinations")
	}

	return combinations, nil
}

// GenerateCombinations pairs the courier's pending orders. Only one generation per user
// runs at a time; every run stores fresh combinations even if earlier runs produced the same pairs.
func (srv *combinationService) GenerateCombinations(ctx context.Context, userID uuid.UUID) ([]*entity.OrderCombination, error) {
	unlock, err := srv.locker.Lock(ctx, generationLockKeyPrefix+userID.String())
	if err != nil {
		if errors.Is(err, service.ErrLockHeld) {
			return nil, domainerrors.ErrGenerationInProgress.WrapMessage("generation already running")
		}

		return nil, errors.Wrap(err, "failed to acquire generation lock")
	}
	defer func() {
		if unlockErr := unlock(ctx); unlockErr != nil {
			srv.log(ctx).Warn("Failed to release generation lock", slog.Any("error", unlockErr))
		}
	}()

	pending := entity.OrderStatusPending
	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID, &pending, srv.pendingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending orders")
	}

	combinations, err := srv.generator.Generate(userID, orders)
	if err != nil {
		if errors.Is(err, combination.ErrNotEnoughOrders) {
			return nil, domainerrors.ErrNotEnoughPendingOrders.WrapMessage("pending orders: " + strconv.Itoa(len(orders)))
		}

		return nil, errors.Wrap(err, "failed to generate combinations")
	}
	if combinations == nil {
		combinations = []*entity.OrderCombination{}
	}

	for _, combo := range combinations {
		if err := srv.combinationRepo.CreateCombination(ctx, combo); err != nil {
			return nil, errors.Wrap(err, "failed to store combination")
		}
	}

	metrics.CombinationsGenerated.Add(float64(len(combinations)))
	srv.log(ctx).Info("Combinations generated",
		slog.String("user_id", userID.String()),
		slog.Int("pending_orders", len(orders)),
		slog.Int("combinations", len(combinations)),
	)

	if len(combinations) > 0 {
		srv.publishGenerated(ctx, userID, combinations)
	}

	return combinations, nil
}

func (srv *combinationService) publishGenerated(ctx context.Context, userID uuid.UUID, combinations []*entity.OrderCombination) {
	ids := make([]string, 0, len(combinations))
	for _, combo := range combinations {
		ids = append(ids, combo.ID.String())
	}

	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.NewString(),
		Type:           constants.EventCombinationsGenerated,
		UserID:         userID.String(),
		CombinationIDs: ids,
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish combinations event", slog.Any("error", err))
	}
}

// AcceptCombination flags the combination and moves its orders to accepted atomically.
// Accepting twice re-applies the same state.
func (srv *combinationService) AcceptCombination(ctx context.Context, userID, combinationID uuid.UUID) (*entity.OrderCombination, error) {
	combo, err := srv.combinationRepo.FindCombinationByID(ctx, userID, combinationID)
	if err != nil {
		if errors.Is(err, repository.ErrCombinationNotFound) {
			return nil, domainerrors.ErrCombinationNotFound.WrapMessage("combination not found or not owned by user")
		}

		return nil, errors.Wrap(err, "failed to find combination")
	}

	var updated int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCombinationRepository().MarkAccepted(ctx, userID, combinationID); err != nil {
			return errors.Wrap(err, "failed to mark combination accepted")
		}

		var txErr error
		updated, txErr = repoFactory.NewOrderRepository().UpdateOrdersStatus(ctx, userID, combo.OrderIDs, entity.OrderStatusAccepted)

		return errors.Wrap(txErr, "failed to accept combined orders")
	})
	if err != nil {
		if errors.Is(err, repository.ErrCombinationNotFound) {
			return nil, domainerrors.ErrCombinationNotFound.WrapMessage("combination not found or not owned by user")
		}

		return nil, errors.Wrap(err, "failed to accept combination")
	}

	combo.Accepted = true
	metrics.CombinationsAccepted.Inc()
	srv.log(ctx).Info("Combination accepted",
		slog.String("combination_id", combinationID.String()),
		slog.Int64("orders_updated", updated),
	)

	return combo, nil
}

package postgres

import (
	"context"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
// Every query is filtered by user_id so foreign orders look exactly like missing ones.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidOrderStatus.WrapMessage("order rejected by constraint " + constraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order owned by userID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser returns the newest orders of a user first, optionally filtered by status.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID, status *entity.OrderStatus, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus sets the status of one order owned by userID.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, userID, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateOrdersStatus sets the status of every listed order owned by userID.
// Orders of other users are silently left untouched.
func (repo *orderRepository) UpdateOrdersStatus(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, status entity.OrderStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("status", string(status))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update orders status")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		AppID:          data.AppID,
		AppName:        data.AppName,
		NotificationID: data.NotificationID,
		OrderReference: data.OrderReference,
		CustomerName:   data.CustomerName,
		Pickup: entity.Location{
			Latitude:  data.PickupLatitude,
			Longitude: data.PickupLongitude,
			Address:   data.PickupAddress,
		},
		Dropoff: entity.Location{
			Latitude:  data.DropoffLatitude,
			Longitude: data.DropoffLongitude,
			Address:   data.DropoffAddress,
		},
		PaymentAmount: data.PaymentAmount,
		Status:        entity.OrderStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		AppID:            data.AppID,
		AppName:          data.AppName,
		NotificationID:   data.NotificationID,
		OrderReference:   data.OrderReference,
		CustomerName:     data.CustomerName,
		PickupAddress:    data.Pickup.Address,
		PickupLatitude:   data.Pickup.Latitude,
		PickupLongitude:  data.Pickup.Longitude,
		DropoffAddress:   data.Dropoff.Address,
		DropoffLatitude:  data.Dropoff.Latitude,
		DropoffLongitude: data.Dropoff.Longitude,
		PaymentAmount:    data.PaymentAmount,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

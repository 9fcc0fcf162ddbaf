package postgres

import (
	"context"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// combinationRepository implements the repository.CombinationRepository interface.
type combinationRepository struct {
	db *gorm.DB
}

// NewCombinationRepository is the constructor for combinationRepository.
func NewCombinationRepository(db *gorm.DB) repository.CombinationRepository {
	return &combinationRepository{
		db: db,
	}
}

// CreateCombination persists a new combination.
func (repo *combinationRepository) CreateCombination(ctx context.Context, combination *entity.OrderCombination) error {
	combinationM := fromCombinationDomain(combination)

	if err := repo.db.WithContext(ctx).Create(combinationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order combination")
	}

	combination.ID = combinationM.ID
	combination.CreatedAt = combinationM.CreatedAt

	return nil
}

// FindCombinationByID retrieves a combination owned by userID.
func (repo *combinationRepository) FindCombinationByID(ctx context.Context, userID, id uuid.UUID) (*entity.OrderCombination, error) {
	var combinationM model.OrderCombinationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&combinationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCombinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find combination by ID")
	}

	return toCombinationDomain(&combinationM), nil
}

// FindCombinationsByUser returns the newest combinations of a user first.
func (repo *combinationRepository) FindCombinationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.OrderCombination, error) {
	var combinationModels []*model.OrderCombinationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&combinationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find combinations by user")
	}

	combinations := make([]*entity.OrderCombination, 0, len(combinationModels))
	for _, combinationM := range combinationModels {
		combinations = append(combinations, toCombinationDomain(combinationM))
	}

	return combinations, nil
}

// MarkAccepted sets accepted=true on a combination owned by userID.
// Re-accepting succeeds because Postgres reports matched rows for UPDATE,
// even when the stored value is unchanged. A driver reporting only changed
// rows would turn a re-accept into ErrCombinationNotFound.
func (repo *combinationRepository) MarkAccepted(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderCombinationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("accepted", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to accept combination")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCombinationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCombinationDomain converts a GORM OrderCombinationModel to a domain OrderCombination entity.
func toCombinationDomain(data *model.OrderCombinationModel) *entity.OrderCombination {
	if data == nil {
		return nil
	}

	return &entity.OrderCombination{
		ID:                   data.ID,
		UserID:               data.UserID,
		OrderIDs:             []uuid.UUID(data.OrderIDs),
		TotalDistanceKm:      data.TotalDistanceKm,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		SavingsPercentage:    data.SavingsPercentage,
		Accepted:             data.Accepted,
		CreatedAt:            data.CreatedAt,
	}
}

// fromCombinationDomain converts a domain OrderCombination entity to a GORM OrderCombinationModel.
func fromCombinationDomain(data *entity.OrderCombination) *model.OrderCombinationModel {
	if data == nil {
		return nil
	}

	return &model.OrderCombinationModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		OrderIDs:             datatypes.NewJSONSlice(data.OrderIDs),
		TotalDistanceKm:      data.TotalDistanceKm,
		EstimatedTimeMinutes: data.EstimatedTimeMinutes,
		SavingsPercentage:    data.SavingsPercentage,
		Accepted:             data.Accepted,
		CreatedAt:            data.CreatedAt,
	}
}

package postgres

import (
	"context"

	"mandoob/internal/domain/entity"
	domainerrors "mandoob/internal/domain/errors"
	"mandoob/internal/domain/repository"
	"mandoob/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deliveryAppRepository implements the repository.DeliveryAppRepository interface.
type deliveryAppRepository struct {
	db *gorm.DB
}

// NewDeliveryAppRepository is the constructor for deliveryAppRepository.
func NewDeliveryAppRepository(db *gorm.DB) repository.DeliveryAppRepository {
	return &deliveryAppRepository{
		db: db,
	}
}

// ListApps returns the whole catalog ordered by name.
func (repo *deliveryAppRepository) ListApps(ctx context.Context) ([]*entity.DeliveryApp, error) {
	var appModels []*model.DeliveryAppModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&appModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery apps")
	}

	apps := make([]*entity.DeliveryApp, 0, len(appModels))
	for _, appM := range appModels {
		apps = append(apps, toDeliveryAppDomain(appM))
	}

	return apps, nil
}

// CreateApps inserts the apps in one statement. Names that already exist are skipped,
// so concurrent seeding of an empty catalog is harmless.
func (repo *deliveryAppRepository) CreateApps(ctx context.Context, apps []*entity.DeliveryApp) error {
	if len(apps) == 0 {
		return nil
	}

	appModels := make([]*model.DeliveryAppModel, 0, len(apps))
	for _, app := range apps {
		appModels = append(appModels, fromDeliveryAppDomain(app))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&appModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery apps")
	}

	for i, appM := range appModels {
		apps[i].ID = appM.ID
		apps[i].CreatedAt = appM.CreatedAt
	}

	return nil
}

// FindAppByName looks up an app by name, ignoring case.
func (repo *deliveryAppRepository) FindAppByName(ctx context.Context, name string) (*entity.DeliveryApp, error) {
	var appM model.DeliveryAppModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery app by name")
	}

	return toDeliveryAppDomain(&appM), nil
}

// --- Mapper Functions ---

// toDeliveryAppDomain converts a GORM DeliveryAppModel to a domain DeliveryApp entity.
func toDeliveryAppDomain(data *model.DeliveryAppModel) *entity.DeliveryApp {
	if data == nil {
		return nil
	}

	return &entity.DeliveryApp{
		ID:        data.ID,
		Name:      data.Name,
		LogoURL:   data.LogoURL,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

// fromDeliveryAppDomain converts a domain DeliveryApp entity to a GORM DeliveryAppModel.
func fromDeliveryAppDomain(data *entity.DeliveryApp) *model.DeliveryAppModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryAppModel{
		ID:        data.ID,
		Name:      data.Name,
		LogoURL:   data.LogoURL,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

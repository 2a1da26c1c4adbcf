package postgres

import (
	"context"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface using
// GORM. The table is append-only; there are no update or delete paths.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Append writes one GPS ping for a parcel.
func (repo *locationRepository) Append(ctx context.Context, location *entity.Location) error {
	locationM := model.FromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrParcelNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append location")
	}

	location.ID = locationM.ID
	location.RecordedAt = locationM.RecordedAt

	return nil
}

// History returns all pings for a parcel, newest first.
func (repo *locationRepository) History(ctx context.Context, parcelID uint) ([]*entity.Location, error) {
	var locationMs []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID).
		Order("recorded_at DESC").
		Find(&locationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location history")
	}

	locations := make([]*entity.Location, 0, len(locationMs))
	for _, locationM := range locationMs {
		locations = append(locations, locationM.ToDomain())
	}

	return locations, nil
}

// Latest returns the most recent ping for a parcel.
func (repo *locationRepository) Latest(ctx context.Context, parcelID uint) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID).
		Order("recorded_at DESC").
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoLocationRecorded
		}

		return nil, errors.Wrap(err, "failed to load latest location")
	}

	return locationM.ToDomain(), nil
}

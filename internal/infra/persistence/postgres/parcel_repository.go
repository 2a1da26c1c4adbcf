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

// parcelRepository implements the domain.ParcelRepository interface using GORM.
// Reads preload the customer and agent references.
type parcelRepository struct {
	db *gorm.DB
}

// NewParcelRepository is the constructor for parcelRepository.
func NewParcelRepository(db *gorm.DB) repository.ParcelRepository {
	return &parcelRepository{db: db}
}

// Create persists a new parcel and fills in the generated fields.
func (repo *parcelRepository) Create(ctx context.Context, parcel *entity.Parcel) error {
	parcelM := model.FromParcelDomain(parcel)

	if err := repo.db.WithContext(ctx).Create(parcelM).Error; err != nil {
		// The tracking number unique index is the backstop for the
		// same-millisecond generation collision.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTrackingNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown customer or agent reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create parcel")
	}

	parcel.ID = parcelM.ID
	parcel.CreatedAt = parcelM.CreatedAt
	parcel.UpdatedAt = parcelM.UpdatedAt

	return nil
}

// FindByID retrieves a parcel by its numeric ID with its customer and agent.
func (repo *parcelRepository) FindByID(ctx context.Context, id uint) (*entity.Parcel, error) {
	var parcelM model.ParcelModel
	err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Agent").
		First(&parcelM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParcelNotFound
		}

		return nil, errors.Wrap(err, "failed to find parcel by id")
	}

	return parcelM.ToDomain(), nil
}

// FindByTrackingNumber retrieves a parcel by its tracking number.
func (repo *parcelRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Parcel, error) {
	var parcelM model.ParcelModel
	err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Agent").
		Where("tracking_number = ?", trackingNumber).
		First(&parcelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParcelNotFound
		}

		return nil, errors.Wrap(err, "failed to find parcel by tracking number")
	}

	return parcelM.ToDomain(), nil
}

// List returns parcels matching the filter, newest first.
func (repo *parcelRepository) List(ctx context.Context, filter repository.ParcelFilter) ([]*entity.Parcel, error) {
	query := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Agent").
		Order("created_at DESC")

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}

	var parcelMs []*model.ParcelModel
	if err := query.Find(&parcelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list parcels")
	}

	parcels := make([]*entity.Parcel, 0, len(parcelMs))
	for _, parcelM := range parcelMs {
		parcels = append(parcels, parcelM.ToDomain())
	}

	return parcels, nil
}

// Update persists changes to an existing parcel.
func (repo *parcelRepository) Update(ctx context.Context, parcel *entity.Parcel) error {
	parcelM := model.FromParcelDomain(parcel)

	if err := repo.db.WithContext(ctx).Save(parcelM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown customer or agent reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update parcel")
	}

	parcel.UpdatedAt = parcelM.UpdatedAt

	return nil
}

// Delete removes a parcel permanently, together with its location history.
func (repo *parcelRepository) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parcel_id = ?", id).Delete(&model.LocationModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.ParcelModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrParcelNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return repository.ErrParcelNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete parcel")
	}

	return nil
}

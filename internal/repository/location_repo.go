package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// LocationRepository is the storage-location data access interface.
type LocationRepository interface {
	Create(ctx context.Context, l *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	GetDeskByCustodian(ctx context.Context, custodianID string) (*model.Location, error)
	// GetOrCreateDesk returns the custodian's personal desk, creating it
	// if none exists. The partial unique index on custodian_id guarantees
	// at most one desk per user even under concurrent calls.
	GetOrCreateDesk(ctx context.Context, custodianID, label string) (*model.Location, error)
	List(ctx context.Context, locationType string) ([]model.Location, error)
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo creates the gorm-backed LocationRepository.
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var l model.Location
	err := r.db.WithContext(ctx).
		Where("location_id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) GetDeskByCustodian(ctx context.Context, custodianID string) (*model.Location, error) {
	var l model.Location
	err := r.db.WithContext(ctx).
		Where("location_type = ? AND custodian_id = ?", model.LocationUserDesk, custodianID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) GetOrCreateDesk(ctx context.Context, custodianID, label string) (*model.Location, error) {
	l := model.Location{
		Name:         label,
		LocationType: model.LocationUserDesk,
		CustodianID:  &custodianID,
		IsActive:     true,
	}
	err := r.db.WithContext(ctx).
		Where("location_type = ? AND custodian_id = ?", model.LocationUserDesk, custodianID).
		FirstOrCreate(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) List(ctx context.Context, locationType string) ([]model.Location, error) {
	var list []model.Location
	db := r.db.WithContext(ctx)
	if locationType != "" {
		db = db.Where("location_type = ?", locationType)
	}
	err := db.Order("name ASC").Find(&list).Error
	return list, err
}

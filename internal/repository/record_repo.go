package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// RecordFilters narrows physical record listings.
type RecordFilters struct {
	RecordType string
	Status     string
	LocationID string
	Search     string
}

// RecordRepository is the physical-record data access interface.
type RecordRepository interface {
	Create(ctx context.Context, rec *model.Record) error
	GetByID(ctx context.Context, id string) (*model.Record, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Record, error)
	GetByOwnerAndType(ctx context.Context, ppoMasterID, recordType string) (*model.Record, error)
	ListAvailableByOwnerAndTypes(ctx context.Context, ppoMasterID string, recordTypes []string) ([]model.Record, error)
	ListInUseAtLocation(ctx context.Context, locationID string) ([]model.Record, error)
	List(ctx context.Context, f RecordFilters, offset, limit int) ([]model.Record, int64, error)
	Update(ctx context.Context, rec *model.Record) error
	UpdateStatus(ctx context.Context, ids []string, status string) error
	UpdateStatusAndLocation(ctx context.Context, ids []string, status, locationID string) error
}

type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepo creates the gorm-backed RecordRepository.
func NewRecordRepo(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, rec *model.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (*model.Record, error) {
	var rec model.Record
	err := r.db.WithContext(ctx).
		Preload("PPOMaster").
		Preload("CurrentLocation").
		Where("record_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Record, error) {
	var list []model.Record
	err := r.db.WithContext(ctx).
		Where("record_id IN ?", ids).
		Find(&list).Error
	return list, err
}

func (r *recordRepo) GetByOwnerAndType(ctx context.Context, ppoMasterID, recordType string) (*model.Record, error) {
	var rec model.Record
	err := r.db.WithContext(ctx).
		Where("ppo_master_id = ? AND record_type = ?", ppoMasterID, recordType).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepo) ListAvailableByOwnerAndTypes(ctx context.Context, ppoMasterID string, recordTypes []string) ([]model.Record, error) {
	var list []model.Record
	err := r.db.WithContext(ctx).
		Where("ppo_master_id = ? AND record_type IN ? AND status = ?",
			ppoMasterID, recordTypes, model.RecordAvailable).
		Find(&list).Error
	return list, err
}

func (r *recordRepo) ListInUseAtLocation(ctx context.Context, locationID string) ([]model.Record, error) {
	var list []model.Record
	err := r.db.WithContext(ctx).
		Where("current_location_id = ? AND status = ?", locationID, model.RecordInUse).
		Find(&list).Error
	return list, err
}

func (r *recordRepo) List(ctx context.Context, f RecordFilters, offset, limit int) ([]model.Record, int64, error) {
	var list []model.Record
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Record{})
	if f.RecordType != "" {
		db = db.Where("records.record_type = ?", f.RecordType)
	}
	if f.Status != "" {
		db = db.Where("records.status = ?", f.Status)
	}
	if f.LocationID != "" {
		db = db.Where("records.current_location_id = ?", f.LocationID)
	}
	if f.Search != "" {
		kw := "%" + f.Search + "%"
		db = db.Joins("JOIN ppo_masters ON ppo_masters.ppo_master_id = records.ppo_master_id").
			Where("ppo_masters.ppo_number ILIKE ? OR ppo_masters.name ILIKE ?", kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("PPOMaster").Preload("CurrentLocation").
		Offset(offset).Limit(limit).
		Order("records.created_at DESC").
		Find(&list).Error
	return list, total, err
}

func (r *recordRepo) Update(ctx context.Context, rec *model.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordRepo) UpdateStatus(ctx context.Context, ids []string, status string) error {
	return r.db.WithContext(ctx).Model(&model.Record{}).
		Where("record_id IN ?", ids).
		Update("status", status).Error
}

func (r *recordRepo) UpdateStatusAndLocation(ctx context.Context, ids []string, status, locationID string) error {
	return r.db.WithContext(ctx).Model(&model.Record{}).
		Where("record_id IN ?", ids).
		Updates(map[string]interface{}{
			"status":              status,
			"current_location_id": locationID,
		}).Error
}

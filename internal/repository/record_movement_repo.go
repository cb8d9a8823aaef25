package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// RecordMovementRepository writes and reads the record custody trail.
// Movements are append-only; there is no update or delete.
type RecordMovementRepository interface {
	Create(ctx context.Context, m *model.RecordMovement) error
	CreateBatch(ctx context.Context, ms []model.RecordMovement) error
	ListByRecord(ctx context.Context, recordID string) ([]model.RecordMovement, error)
	ListByRequisition(ctx context.Context, requisitionID string) ([]model.RecordMovement, error)
}

type recordMovementRepo struct {
	db *gorm.DB
}

// NewRecordMovementRepo creates the gorm-backed RecordMovementRepository.
func NewRecordMovementRepo(db *gorm.DB) RecordMovementRepository {
	return &recordMovementRepo{db: db}
}

func (r *recordMovementRepo) Create(ctx context.Context, m *model.RecordMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *recordMovementRepo) CreateBatch(ctx context.Context, ms []model.RecordMovement) error {
	if len(ms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ms).Error
}

func (r *recordMovementRepo) ListByRecord(ctx context.Context, recordID string) ([]model.RecordMovement, error) {
	var list []model.RecordMovement
	err := r.db.WithContext(ctx).
		Preload("FromLocation").
		Preload("ToLocation").
		Where("record_id = ?", recordID).
		Order("moved_at ASC").
		Find(&list).Error
	return list, err
}

func (r *recordMovementRepo) ListByRequisition(ctx context.Context, requisitionID string) ([]model.RecordMovement, error) {
	var list []model.RecordMovement
	err := r.db.WithContext(ctx).
		Where("requisition_id = ?", requisitionID).
		Order("moved_at ASC").
		Find(&list).Error
	return list, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// TriggerRepository is the requisition-trigger data access interface.
type TriggerRepository interface {
	Create(ctx context.Context, t *model.RequisitionTrigger) error
	GetByID(ctx context.Context, id string) (*model.RequisitionTrigger, error)
	ListActiveByEvent(ctx context.Context, event, caseTypeID string) ([]model.RequisitionTrigger, error)
	List(ctx context.Context) ([]model.RequisitionTrigger, error)
	Update(ctx context.Context, t *model.RequisitionTrigger) error
}

type triggerRepo struct {
	db *gorm.DB
}

// NewTriggerRepo creates the gorm-backed TriggerRepository.
func NewTriggerRepo(db *gorm.DB) TriggerRepository {
	return &triggerRepo{db: db}
}

func (r *triggerRepo) Create(ctx context.Context, t *model.RequisitionTrigger) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *triggerRepo) GetByID(ctx context.Context, id string) (*model.RequisitionTrigger, error) {
	var t model.RequisitionTrigger
	err := r.db.WithContext(ctx).
		Preload("CaseType").
		Where("trigger_id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *triggerRepo) ListActiveByEvent(ctx context.Context, event, caseTypeID string) ([]model.RequisitionTrigger, error) {
	var list []model.RequisitionTrigger
	err := r.db.WithContext(ctx).
		Where("trigger_event = ? AND case_type_id = ? AND is_active = true", event, caseTypeID).
		Find(&list).Error
	return list, err
}

func (r *triggerRepo) List(ctx context.Context) ([]model.RequisitionTrigger, error) {
	var list []model.RequisitionTrigger
	err := r.db.WithContext(ctx).
		Preload("CaseType").
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *triggerRepo) Update(ctx context.Context, t *model.RequisitionTrigger) error {
	return r.db.WithContext(ctx).Save(t).Error
}

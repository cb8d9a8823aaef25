package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// RequisitionFilters narrows requisition listings.
type RequisitionFilters struct {
	Status        string
	RequestedByID string
	ApproverID    string
	CaseUID       string
}

// RequisitionRepository is the record-requisition data access interface.
type RequisitionRepository interface {
	Create(ctx context.Context, req *model.RecordRequisition, recordIDs []string) error
	GetByID(ctx context.Context, id string) (*model.RecordRequisition, error)
	GetByNumber(ctx context.Context, requisitionNo string) (*model.RecordRequisition, error)
	List(ctx context.Context, f RequisitionFilters, offset, limit int) ([]model.RecordRequisition, int64, error)
	ListOpenByCase(ctx context.Context, caseUID string) ([]model.RecordRequisition, error)
	Update(ctx context.Context, req *model.RecordRequisition) error
}

type requisitionRepo struct {
	db *gorm.DB
}

// NewRequisitionRepo creates the gorm-backed RequisitionRepository.
func NewRequisitionRepo(db *gorm.DB) RequisitionRepository {
	return &requisitionRepo{db: db}
}

func (r *requisitionRepo) Create(ctx context.Context, req *model.RecordRequisition, recordIDs []string) error {
	if err := r.db.WithContext(ctx).Omit("Records").Create(req).Error; err != nil {
		return err
	}
	if len(recordIDs) == 0 {
		return nil
	}
	var recs []model.Record
	if err := r.db.WithContext(ctx).Where("record_id IN ?", recordIDs).Find(&recs).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(req).Association("Records").Append(&recs)
}

func (r *requisitionRepo) GetByID(ctx context.Context, id string) (*model.RecordRequisition, error) {
	var req model.RecordRequisition
	err := r.db.WithContext(ctx).
		Preload("Records").
		Preload("Records.PPOMaster").
		Preload("RequestedBy").
		Preload("ApprovingAAO").
		Where("requisition_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requisitionRepo) GetByNumber(ctx context.Context, requisitionNo string) (*model.RecordRequisition, error) {
	var req model.RecordRequisition
	err := r.db.WithContext(ctx).
		Preload("Records").
		Where("requisition_no = ?", requisitionNo).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requisitionRepo) List(ctx context.Context, f RequisitionFilters, offset, limit int) ([]model.RecordRequisition, int64, error) {
	var list []model.RecordRequisition
	var total int64

	db := r.db.WithContext(ctx).Model(&model.RecordRequisition{})
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.RequestedByID != "" {
		db = db.Where("requested_by_id = ?", f.RequestedByID)
	}
	if f.ApproverID != "" {
		db = db.Where("approving_aao_id = ?", f.ApproverID)
	}
	if f.CaseUID != "" {
		db = db.Where("case_uid = ?", f.CaseUID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Records").Preload("RequestedBy").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&list).Error
	return list, total, err
}

func (r *requisitionRepo) ListOpenByCase(ctx context.Context, caseUID string) ([]model.RecordRequisition, error) {
	var list []model.RecordRequisition
	err := r.db.WithContext(ctx).
		Preload("Records").
		Where("case_uid = ? AND status NOT IN ?", caseUID,
			[]string{model.ReqRejected, model.ReqReturned}).
		Find(&list).Error
	return list, err
}

func (r *requisitionRepo) Update(ctx context.Context, req *model.RecordRequisition) error {
	return r.db.WithContext(ctx).Omit("Records").Save(req).Error
}

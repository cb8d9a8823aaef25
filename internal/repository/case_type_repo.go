package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// CaseTypeRepository is the case-type data access interface.
type CaseTypeRepository interface {
	Create(ctx context.Context, t *model.CaseType) error
	GetByID(ctx context.Context, id string) (*model.CaseType, error)
	GetByName(ctx context.Context, name string) (*model.CaseType, error)
	List(ctx context.Context, activeOnly bool) ([]model.CaseType, error)
	Update(ctx context.Context, t *model.CaseType) error
}

type caseTypeRepo struct {
	db *gorm.DB
}

// NewCaseTypeRepo creates the gorm-backed CaseTypeRepository.
func NewCaseTypeRepo(db *gorm.DB) CaseTypeRepository {
	return &caseTypeRepo{db: db}
}

func (r *caseTypeRepo) Create(ctx context.Context, t *model.CaseType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *caseTypeRepo) GetByID(ctx context.Context, id string) (*model.CaseType, error) {
	var t model.CaseType
	err := r.db.WithContext(ctx).
		Where("case_type_id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *caseTypeRepo) GetByName(ctx context.Context, name string) (*model.CaseType, error) {
	var t model.CaseType
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *caseTypeRepo) List(ctx context.Context, activeOnly bool) ([]model.CaseType, error) {
	var types []model.CaseType
	db := r.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active = TRUE")
	}
	err := db.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *caseTypeRepo) Update(ctx context.Context, t *model.CaseType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

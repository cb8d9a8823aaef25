package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// FamilyClaimRepository is the family-pension-claim data access interface.
type FamilyClaimRepository interface {
	Create(ctx context.Context, c *model.FamilyPensionClaim) error
	GetByCase(ctx context.Context, caseUID string) (*model.FamilyPensionClaim, error)
	List(ctx context.Context, status string, offset, limit int) ([]model.FamilyPensionClaim, int64, error)
	Update(ctx context.Context, c *model.FamilyPensionClaim) error
}

type familyClaimRepo struct {
	db *gorm.DB
}

// NewFamilyClaimRepo creates the gorm-backed FamilyClaimRepository.
func NewFamilyClaimRepo(db *gorm.DB) FamilyClaimRepository {
	return &familyClaimRepo{db: db}
}

func (r *familyClaimRepo) Create(ctx context.Context, c *model.FamilyPensionClaim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *familyClaimRepo) GetByCase(ctx context.Context, caseUID string) (*model.FamilyPensionClaim, error) {
	var c model.FamilyPensionClaim
	err := r.db.WithContext(ctx).
		Where("case_uid = ?", caseUID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *familyClaimRepo) List(ctx context.Context, status string, offset, limit int) ([]model.FamilyPensionClaim, int64, error) {
	var list []model.FamilyPensionClaim
	var total int64

	db := r.db.WithContext(ctx).Model(&model.FamilyPensionClaim{})
	if status != "" {
		db = db.Where("claim_status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&list).Error
	return list, total, err
}

func (r *familyClaimRepo) Update(ctx context.Context, c *model.FamilyPensionClaim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// CaseMovementRepository is the case audit-trail access interface.
// Movements are append-only: there is deliberately no update or delete.
type CaseMovementRepository interface {
	Create(ctx context.Context, m *model.CaseMovement) error
	ListByCase(ctx context.Context, caseUID string) ([]model.CaseMovement, error)
}

type caseMovementRepo struct {
	db *gorm.DB
}

// NewCaseMovementRepo creates the gorm-backed CaseMovementRepository.
func NewCaseMovementRepo(db *gorm.DB) CaseMovementRepository {
	return &caseMovementRepo{db: db}
}

func (r *caseMovementRepo) Create(ctx context.Context, m *model.CaseMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *caseMovementRepo) ListByCase(ctx context.Context, caseUID string) ([]model.CaseMovement, error) {
	var movements []model.CaseMovement
	err := r.db.WithContext(ctx).
		Preload("FromHolder").
		Preload("ToHolder").
		Where("case_uid = ?", caseUID).
		Order("movement_date DESC").
		Find(&movements).Error
	return movements, err
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// RetiringEmployeeRepository is the retiring-employee data access interface.
type RetiringEmployeeRepository interface {
	Create(ctx context.Context, e *model.RetiringEmployee) error
	GetByID(ctx context.Context, id string) (*model.RetiringEmployee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.RetiringEmployee, error)
	ListByRetirementWindow(ctx context.Context, from, to time.Time) ([]model.RetiringEmployee, error)
	List(ctx context.Context, offset, limit int) ([]model.RetiringEmployee, int64, error)
	Update(ctx context.Context, e *model.RetiringEmployee) error
	CountPPOsForYear(ctx context.Context, year int) (int64, error)
}

type retiringEmployeeRepo struct {
	db *gorm.DB
}

// NewRetiringEmployeeRepo creates the gorm-backed RetiringEmployeeRepository.
func NewRetiringEmployeeRepo(db *gorm.DB) RetiringEmployeeRepository {
	return &retiringEmployeeRepo{db: db}
}

func (r *retiringEmployeeRepo) Create(ctx context.Context, e *model.RetiringEmployee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *retiringEmployeeRepo) GetByID(ctx context.Context, id string) (*model.RetiringEmployee, error) {
	var e model.RetiringEmployee
	err := r.db.WithContext(ctx).
		Preload("PPOMaster").
		Where("employee_uid = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *retiringEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*model.RetiringEmployee, error) {
	var e model.RetiringEmployee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *retiringEmployeeRepo) ListByRetirementWindow(ctx context.Context, from, to time.Time) ([]model.RetiringEmployee, error) {
	var list []model.RetiringEmployee
	err := r.db.WithContext(ctx).
		Where("retirement_date >= ? AND retirement_date <= ?", from, to).
		Order("retirement_date ASC, name ASC").
		Find(&list).Error
	return list, err
}

func (r *retiringEmployeeRepo) List(ctx context.Context, offset, limit int) ([]model.RetiringEmployee, int64, error) {
	var list []model.RetiringEmployee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.RetiringEmployee{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("retirement_date ASC, name ASC").
		Find(&list).Error
	return list, total, err
}

func (r *retiringEmployeeRepo) Update(ctx context.Context, e *model.RetiringEmployee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *retiringEmployeeRepo) CountPPOsForYear(ctx context.Context, year int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PPOMaster{}).
		Where("EXTRACT(YEAR FROM retirement_date) = ?", year).
		Count(&n).Error
	return n, err
}

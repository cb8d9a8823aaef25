package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// PPOMasterRepository is the pensioner-master data access interface.
type PPOMasterRepository interface {
	Create(ctx context.Context, p *model.PPOMaster) error
	GetByID(ctx context.Context, id string) (*model.PPOMaster, error)
	GetByNumber(ctx context.Context, ppoNumber string) (*model.PPOMaster, error)
	List(ctx context.Context, search string, offset, limit int) ([]model.PPOMaster, int64, error)
	Update(ctx context.Context, p *model.PPOMaster) error
}

type ppoMasterRepo struct {
	db *gorm.DB
}

// NewPPOMasterRepo creates the gorm-backed PPOMasterRepository.
func NewPPOMasterRepo(db *gorm.DB) PPOMasterRepository {
	return &ppoMasterRepo{db: db}
}

func (r *ppoMasterRepo) Create(ctx context.Context, p *model.PPOMaster) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ppoMasterRepo) GetByID(ctx context.Context, id string) (*model.PPOMaster, error) {
	var p model.PPOMaster
	err := r.db.WithContext(ctx).
		Where("ppo_master_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ppoMasterRepo) GetByNumber(ctx context.Context, ppoNumber string) (*model.PPOMaster, error) {
	var p model.PPOMaster
	err := r.db.WithContext(ctx).
		Where("ppo_number = ?", ppoNumber).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ppoMasterRepo) List(ctx context.Context, search string, offset, limit int) ([]model.PPOMaster, int64, error) {
	var list []model.PPOMaster
	var total int64

	db := r.db.WithContext(ctx).Model(&model.PPOMaster{})
	if search != "" {
		kw := "%" + search + "%"
		db = db.Where("ppo_number ILIKE ? OR name ILIKE ?", kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("ppo_number ASC").
		Find(&list).Error
	return list, total, err
}

func (r *ppoMasterRepo) Update(ctx context.Context, p *model.PPOMaster) error {
	return r.db.WithContext(ctx).Save(p).Error
}

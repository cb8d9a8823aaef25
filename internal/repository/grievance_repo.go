package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// GrievanceFilters narrows grievance listings.
type GrievanceFilters struct {
	Status    string
	PPONumber string
	Search    string
}

// GrievanceRepository is the grievance data access interface.
type GrievanceRepository interface {
	Create(ctx context.Context, g *model.Grievance) error
	GetByID(ctx context.Context, id string) (*model.Grievance, error)
	GetByGrievanceID(ctx context.Context, grievanceID string) (*model.Grievance, error)
	List(ctx context.Context, f GrievanceFilters, offset, limit int) ([]model.Grievance, int64, error)
	Update(ctx context.Context, g *model.Grievance) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type grievanceRepo struct {
	db *gorm.DB
}

// NewGrievanceRepo creates the gorm-backed GrievanceRepository.
func NewGrievanceRepo(db *gorm.DB) GrievanceRepository {
	return &grievanceRepo{db: db}
}

func (r *grievanceRepo) Create(ctx context.Context, g *model.Grievance) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *grievanceRepo) GetByID(ctx context.Context, id string) (*model.Grievance, error) {
	var g model.Grievance
	err := r.db.WithContext(ctx).
		Preload("PPOMaster").
		Where("id = ?", id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *grievanceRepo) GetByGrievanceID(ctx context.Context, grievanceID string) (*model.Grievance, error) {
	var g model.Grievance
	err := r.db.WithContext(ctx).
		Preload("PPOMaster").
		Where("grievance_id = ?", grievanceID).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *grievanceRepo) List(ctx context.Context, f GrievanceFilters, offset, limit int) ([]model.Grievance, int64, error) {
	var list []model.Grievance
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Grievance{})
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.PPONumber != "" {
		db = db.Joins("JOIN ppo_masters ON ppo_masters.ppo_master_id = grievances.ppo_master_id").
			Where("ppo_masters.ppo_number = ?", f.PPONumber)
	}
	if f.Search != "" {
		kw := "%" + f.Search + "%"
		db = db.Where("grievance_id ILIKE ? OR complainant_name ILIKE ? OR description ILIKE ?", kw, kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("PPOMaster").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&list).Error
	return list, total, err
}

func (r *grievanceRepo) Update(ctx context.Context, g *model.Grievance) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *grievanceRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}

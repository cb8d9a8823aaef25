package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// SystemConfigRepository reads and writes the single operational
// defaults row (default approver, default dealing hand, record room).
type SystemConfigRepository interface {
	Get(ctx context.Context) (*model.SystemConfig, error)
	Update(ctx context.Context, c *model.SystemConfig) error
}

type systemConfigRepo struct {
	db *gorm.DB
}

// NewSystemConfigRepo creates the gorm-backed SystemConfigRepository.
func NewSystemConfigRepo(db *gorm.DB) SystemConfigRepository {
	return &systemConfigRepo{db: db}
}

func (r *systemConfigRepo) Get(ctx context.Context) (*model.SystemConfig, error) {
	var c model.SystemConfig
	err := r.db.WithContext(ctx).
		Preload("DefaultApprover").
		Preload("DefaultDealingHand").
		First(&c, 1).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *systemConfigRepo) Update(ctx context.Context, c *model.SystemConfig) error {
	c.ID = 1
	return r.db.WithContext(ctx).Save(c).Error
}

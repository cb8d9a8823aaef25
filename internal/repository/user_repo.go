package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// UserFilters narrows user listing.
type UserFilters struct {
	Role          string
	ActiveHolders bool // only is_active_holder
	RecordKeepers bool // only is_record_keeper
	Keyword       string
}

// UserRepository is the user-profile data access interface.
type UserRepository interface {
	Create(ctx context.Context, user *model.UserProfile) error
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*model.UserProfile, error)
	List(ctx context.Context, filters UserFilters, offset, limit int) ([]model.UserProfile, int64, error)
	ListHoldersByRole(ctx context.Context, role string) ([]model.UserProfile, error)
	FirstActiveByRole(ctx context.Context, role string) (*model.UserProfile, error)
	Update(ctx context.Context, user *model.UserProfile) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the gorm-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context, filters UserFilters, offset, limit int) ([]model.UserProfile, int64, error) {
	var users []model.UserProfile
	var total int64

	db := r.db.WithContext(ctx).Model(&model.UserProfile{})
	if filters.Role != "" {
		db = db.Where("role = ?", filters.Role)
	}
	if filters.ActiveHolders {
		db = db.Where("is_active_holder = TRUE")
	}
	if filters.RecordKeepers {
		db = db.Where("is_record_keeper = TRUE")
	}
	if filters.Keyword != "" {
		kw := "%" + filters.Keyword + "%"
		db = db.Where("username ILIKE ? OR full_name ILIKE ?", kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("role ASC, username ASC").
		Find(&users).Error
	return users, total, err
}

func (r *userRepo) ListHoldersByRole(ctx context.Context, role string) ([]model.UserProfile, error) {
	var users []model.UserProfile
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active_holder = TRUE", role).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) FirstActiveByRole(ctx context.Context, role string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active_holder = TRUE", role).
		Order("created_at ASC").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.UserProfile) error {
	return r.db.WithContext(ctx).Save(user).Error
}

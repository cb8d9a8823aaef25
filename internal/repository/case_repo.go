package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/model"
)

// CaseFilters narrows case listing. HolderRoles implements the
// hierarchy-scoped dashboard view: non-admin viewers only see cases
// held at their own rank or below.
type CaseFilters struct {
	HolderID    string
	HolderRoles []string
	CaseTypeID  string
	Priority    string
	Status      string // "pending" | "completed" | "overdue"
	Search      string
}

// CaseStats is the aggregate dashboard summary.
type CaseStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Overdue   int64 `json:"overdue"`
}

// CaseRepository is the case data access interface.
type CaseRepository interface {
	Create(ctx context.Context, c *model.Case) error
	GetByID(ctx context.Context, id string) (*model.Case, error)
	GetByCaseID(ctx context.Context, caseID string) (*model.Case, error)
	List(ctx context.Context, filters CaseFilters, offset, limit int) ([]model.Case, int64, error)
	ListPending(ctx context.Context) ([]model.Case, error)
	ListByHolder(ctx context.Context, holderID string, pendingOnly bool) ([]model.Case, error)
	Update(ctx context.Context, c *model.Case) error
	UpdateDayCounters(ctx context.Context, id string, daysInCurrent, totalPending int) error
	Stats(ctx context.Context, now time.Time) (*CaseStats, error)
	CountByPriority(ctx context.Context, priority string, pendingOnly bool) (int64, error)
	CountByHolder(ctx context.Context, holderID string, pendingOnly bool) (int64, error)
	CountByHolderRole(ctx context.Context, role string, pendingOnly bool) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.Case, error)
}

type caseRepo struct {
	db *gorm.DB
}

// NewCaseRepo creates the gorm-backed CaseRepository.
func NewCaseRepo(db *gorm.DB) CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) Create(ctx context.Context, c *model.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (*model.Case, error) {
	var c model.Case
	err := r.db.WithContext(ctx).
		Preload("CaseType").
		Preload("CurrentHolder").
		Preload("PPOMaster").
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) GetByCaseID(ctx context.Context, caseID string) (*model.Case, error) {
	var c model.Case
	err := r.db.WithContext(ctx).
		Preload("CaseType").
		Preload("CurrentHolder").
		Preload("PPOMaster").
		Where("case_id = ?", caseID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) List(ctx context.Context, filters CaseFilters, offset, limit int) ([]model.Case, int64, error) {
	var cases []model.Case
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Case{})

	if filters.HolderID != "" {
		db = db.Where("current_holder_id = ?", filters.HolderID)
	}
	if len(filters.HolderRoles) > 0 {
		db = db.Where("current_holder_id IN (?)",
			r.db.Model(&model.UserProfile{}).Select("user_id").Where("role IN ?", filters.HolderRoles))
	}
	if filters.CaseTypeID != "" {
		db = db.Where("case_type_id = ?", filters.CaseTypeID)
	}
	if filters.Priority != "" {
		db = db.Where("priority = ?", filters.Priority)
	}
	switch filters.Status {
	case "completed":
		db = db.Where("is_completed = TRUE")
	case "pending":
		db = db.Where("is_completed = FALSE")
	case "overdue":
		db = db.Where("is_completed = FALSE AND expected_completion < ?", time.Now())
	}
	if filters.Search != "" {
		kw := "%" + filters.Search + "%"
		db = db.Where("case_id ILIKE ? OR case_title ILIKE ? OR applicant_name ILIKE ?", kw, kw, kw)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("CaseType").Preload("CurrentHolder").
		Offset(offset).Limit(limit).
		Order("registration_date DESC").
		Find(&cases).Error
	return cases, total, err
}

func (r *caseRepo) ListPending(ctx context.Context) ([]model.Case, error) {
	var cases []model.Case
	err := r.db.WithContext(ctx).
		Where("is_completed = FALSE").
		Find(&cases).Error
	return cases, err
}

func (r *caseRepo) ListByHolder(ctx context.Context, holderID string, pendingOnly bool) ([]model.Case, error) {
	var cases []model.Case
	db := r.db.WithContext(ctx).
		Preload("CaseType").
		Where("current_holder_id = ?", holderID)
	if pendingOnly {
		db = db.Where("is_completed = FALSE")
	}
	err := db.Order("registration_date DESC").Find(&cases).Error
	return cases, err
}

func (r *caseRepo) Update(ctx context.Context, c *model.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// UpdateDayCounters writes only the two aging counters so the
// reconciliation job cannot clobber a concurrent movement's fields.
func (r *caseRepo) UpdateDayCounters(ctx context.Context, id string, daysInCurrent, totalPending int) error {
	return r.db.WithContext(ctx).
		Model(&model.Case{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"days_in_current_stage": daysInCurrent,
			"total_days_pending":    totalPending,
		}).Error
}

func (r *caseRepo) Stats(ctx context.Context, now time.Time) (*CaseStats, error) {
	var stats CaseStats

	if err := r.db.WithContext(ctx).Model(&model.Case{}).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("is_completed = FALSE").Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("is_completed = TRUE").Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("is_completed = FALSE AND expected_completion < ?", now).
		Count(&stats.Overdue).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *caseRepo) CountByPriority(ctx context.Context, priority string, pendingOnly bool) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(&model.Case{}).Where("priority = ?", priority)
	if pendingOnly {
		db = db.Where("is_completed = FALSE")
	}
	err := db.Count(&n).Error
	return n, err
}

func (r *caseRepo) CountByHolder(ctx context.Context, holderID string, pendingOnly bool) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("current_holder_id = ?", holderID)
	if pendingOnly {
		db = db.Where("is_completed = FALSE")
	}
	err := db.Count(&n).Error
	return n, err
}

func (r *caseRepo) CountByHolderRole(ctx context.Context, role string, pendingOnly bool) (int64, error) {
	var n int64
	db := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("current_holder_id IN (?)",
			r.db.Model(&model.UserProfile{}).Select("user_id").Where("role = ?", role))
	if pendingOnly {
		db = db.Where("is_completed = FALSE")
	}
	err := db.Count(&n).Error
	return n, err
}

func (r *caseRepo) ListRecent(ctx context.Context, limit int) ([]model.Case, error) {
	var cases []model.Case
	err := r.db.WithContext(ctx).
		Preload("CaseType").Preload("CurrentHolder").
		Order("registration_date DESC").
		Limit(limit).
		Find(&cases).Error
	return cases, err
}

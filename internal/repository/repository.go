package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the aggregate entry point for all repositories.
type Repository struct {
	db *gorm.DB

	User             UserRepository
	CaseType         CaseTypeRepository
	Case             CaseRepository
	CaseMovement     CaseMovementRepository
	PPOMaster        PPOMasterRepository
	RetiringEmployee RetiringEmployeeRepository
	Location         LocationRepository
	Record           RecordRepository
	RecordMovement   RecordMovementRepository
	Requisition      RequisitionRepository
	Grievance        GrievanceRepository
	Trigger          TriggerRepository
	SystemConfig     SystemConfigRepository
	Sequence         SequenceRepository
	FamilyClaim      FamilyClaimRepository
}

// NewRepository assembles the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:               db,
		User:             NewUserRepo(db),
		CaseType:         NewCaseTypeRepo(db),
		Case:             NewCaseRepo(db),
		CaseMovement:     NewCaseMovementRepo(db),
		PPOMaster:        NewPPOMasterRepo(db),
		RetiringEmployee: NewRetiringEmployeeRepo(db),
		Location:         NewLocationRepo(db),
		Record:           NewRecordRepo(db),
		RecordMovement:   NewRecordMovementRepo(db),
		Requisition:      NewRequisitionRepo(db),
		Grievance:        NewGrievanceRepo(db),
		Trigger:          NewTriggerRepo(db),
		SystemConfig:     NewSystemConfigRepo(db),
		Sequence:         NewSequenceRepo(db),
		FamilyClaim:      NewFamilyClaimRepo(db),
	}
}

// Transaction runs fn against a Repository bound to one database
// transaction: every write inside either commits together or rolls
// back together. With no underlying db (unit tests assembling mock
// repositories by hand) fn runs directly.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
)

var (
	ErrPPOExists          = errors.New("ppo number already registered")
	ErrEmployeeNotFound   = errors.New("retiring employee not found")
	ErrEmployeeExists     = errors.New("employee id already registered")
	ErrPPOAlreadyIssued   = errors.New("ppo already generated for this employee")
	ErrClaimNotFound      = errors.New("family pension claim not found")
)

// MasterService manages pensioner master data, retiring employees and
// family pension claims.
type MasterService interface {
	CreatePPO(ctx context.Context, req *dto.CreatePPORequest) (*model.PPOMaster, error)
	GetPPO(ctx context.Context, ppoNumber string) (*model.PPOMaster, error)
	ListPPOs(ctx context.Context, req *dto.PPOListRequest) ([]model.PPOMaster, int64, error)
	UpdatePPO(ctx context.Context, id string, req *dto.UpdatePPORequest) (*model.PPOMaster, error)

	CreateRetiringEmployee(ctx context.Context, actorID string, req *dto.CreateRetiringEmployeeRequest) (*model.RetiringEmployee, error)
	ListRetiring(ctx context.Context, from, to time.Time) ([]model.RetiringEmployee, error)
	GeneratePPO(ctx context.Context, actorID, employeeUID string) (*dto.GeneratePPOResponse, error)

	GetClaimByCase(ctx context.Context, caseUID string) (*model.FamilyPensionClaim, error)
	ListClaims(ctx context.Context, status string, page *dto.PaginationRequest) ([]model.FamilyPensionClaim, int64, error)
	UpdateClaim(ctx context.Context, caseUID string, req *dto.UpdateFamilyClaimRequest) (*model.FamilyPensionClaim, error)
}

type masterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMasterService creates a MasterService instance.
func NewMasterService(repo *repository.Repository, logger *zap.Logger) MasterService {
	return &masterService{repo: repo, logger: logger}
}

func (s *masterService) CreatePPO(ctx context.Context, req *dto.CreatePPORequest) (*model.PPOMaster, error) {
	if _, err := s.repo.PPOMaster.GetByNumber(ctx, req.PPONumber); err == nil {
		return nil, ErrPPOExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.PPOMaster{
		PPONumber:      req.PPONumber,
		Name:           req.Name,
		Designation:    req.Designation,
		Department:     req.Department,
		PensionType:    req.PensionType,
		RetirementDate: req.RetirementDate,
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		BranchCode:     req.BranchCode,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
	}
	if err := s.repo.PPOMaster.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *masterService) GetPPO(ctx context.Context, ppoNumber string) (*model.PPOMaster, error) {
	p, err := s.repo.PPOMaster.GetByNumber(ctx, ppoNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPPONotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *masterService) ListPPOs(ctx context.Context, req *dto.PPOListRequest) ([]model.PPOMaster, int64, error) {
	req.Normalize()
	return s.repo.PPOMaster.List(ctx, req.Search, req.Offset(), req.PageSize)
}

func (s *masterService) UpdatePPO(ctx context.Context, id string, req *dto.UpdatePPORequest) (*model.PPOMaster, error) {
	p, err := s.repo.PPOMaster.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPPONotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Designation != nil {
		p.Designation = *req.Designation
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.PensionType != nil {
		p.PensionType = *req.PensionType
	}
	if req.RetirementDate != nil {
		p.RetirementDate = req.RetirementDate
	}
	if req.BankName != nil {
		p.BankName = *req.BankName
	}
	if req.AccountNumber != nil {
		p.AccountNumber = *req.AccountNumber
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.LastLCDoneDate != nil {
		p.LastLCDoneDate = req.LastLCDoneDate
	}
	if req.KYPFlag != nil {
		p.KYPFlag = *req.KYPFlag
	}

	if err := s.repo.PPOMaster.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *masterService) CreateRetiringEmployee(ctx context.Context, actorID string, req *dto.CreateRetiringEmployeeRequest) (*model.RetiringEmployee, error) {
	if _, err := s.repo.RetiringEmployee.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return nil, ErrEmployeeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &model.RetiringEmployee{
		EmployeeID:     req.EmployeeID,
		Name:           req.Name,
		Designation:    req.Designation,
		Department:     req.Department,
		RetirementDate: req.RetirementDate,
		LastWorkingDay: req.LastWorkingDay,
		BasicPay:       req.BasicPay,
		PensionAmount:  req.PensionAmount,
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		IFSCCode:       req.IFSCCode,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		CreatedByID:    &actorID,
	}
	if err := s.repo.RetiringEmployee.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *masterService) ListRetiring(ctx context.Context, from, to time.Time) ([]model.RetiringEmployee, error) {
	return s.repo.RetiringEmployee.ListByRetirementWindow(ctx, from, to)
}

// GeneratePPO mints a pensioner master record for a retiring employee,
// carrying over the service particulars. One PPO per employee, ever.
func (s *masterService) GeneratePPO(ctx context.Context, actorID, employeeUID string) (*dto.GeneratePPOResponse, error) {
	e, err := s.repo.RetiringEmployee.GetByID(ctx, employeeUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if e.PPOGenerated {
		return nil, ErrPPOAlreadyIssued
	}

	now := time.Now()
	p := &model.PPOMaster{
		Name:           e.Name,
		Designation:    e.Designation,
		Department:     e.Department,
		PensionType:    "Superannuation",
		RetirementDate: &e.RetirementDate,
		BankName:       e.BankName,
		AccountNumber:  e.AccountNumber,
		Address:        e.Address,
		Phone:          e.Phone,
		Email:          e.Email,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		seq, err := tx.Sequence.Next(ctx, model.SeqPPO, now.Format("2006"))
		if err != nil {
			return err
		}
		p.PPONumber = ppoNumber(now, seq)

		if err := tx.PPOMaster.Create(ctx, p); err != nil {
			return err
		}

		e.PPOGenerated = true
		e.IsProcessed = true
		e.PPOMasterID = &p.PPOMasterID
		e.PPOMaster = nil
		return tx.RetiringEmployee.Update(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ppo generated",
		zap.String("employee_id", e.EmployeeID),
		zap.String("ppo_number", p.PPONumber),
		zap.String("by", actorID))
	return &dto.GeneratePPOResponse{
		PPOMasterID: p.PPOMasterID,
		PPONumber:   p.PPONumber,
	}, nil
}

func (s *masterService) GetClaimByCase(ctx context.Context, caseUID string) (*model.FamilyPensionClaim, error) {
	c, err := s.repo.FamilyClaim.GetByCase(ctx, caseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *masterService) ListClaims(ctx context.Context, status string, page *dto.PaginationRequest) ([]model.FamilyPensionClaim, int64, error) {
	page.Normalize()
	return s.repo.FamilyClaim.List(ctx, status, page.Offset(), page.PageSize)
}

func (s *masterService) UpdateClaim(ctx context.Context, caseUID string, req *dto.UpdateFamilyClaimRequest) (*model.FamilyPensionClaim, error) {
	c, err := s.GetClaimByCase(ctx, caseUID)
	if err != nil {
		return nil, err
	}

	if req.ClaimStatus != nil {
		c.ClaimStatus = *req.ClaimStatus
	}
	if req.ClaimReceived != nil {
		d, err := time.Parse("2006-01-02", *req.ClaimReceived)
		if err != nil {
			return nil, err
		}
		c.ClaimReceived = &d
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.repo.FamilyClaim.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

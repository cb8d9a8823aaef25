package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
)

var (
	ErrGrievanceNotFound = errors.New("grievance not found")
	ErrAlreadyEscalated  = errors.New("grievance has already been escalated to a case")
	ErrGrievanceClosed   = errors.New("grievance is closed")
)

// GrievanceService registers citizen grievances and escalates them
// into formal cases.
type GrievanceService interface {
	Register(ctx context.Context, req *dto.RegisterGrievanceRequest) (*model.Grievance, error)
	Get(ctx context.Context, id string) (*model.Grievance, error)
	List(ctx context.Context, req *dto.GrievanceListRequest) ([]model.Grievance, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateGrievanceRequest) (*model.Grievance, error)
	Escalate(ctx context.Context, actorID, id string, req *dto.EscalateGrievanceRequest) (*model.Grievance, *model.Case, error)
}

type grievanceService struct {
	repo   *repository.Repository
	cases  CaseService
	logger *zap.Logger
}

// NewGrievanceService creates a GrievanceService instance.
func NewGrievanceService(repo *repository.Repository, cases CaseService, logger *zap.Logger) GrievanceService {
	return &grievanceService{repo: repo, cases: cases, logger: logger}
}

func (s *grievanceService) Register(ctx context.Context, req *dto.RegisterGrievanceRequest) (*model.Grievance, error) {
	g := &model.Grievance{
		ReceivedDate:    time.Now(),
		PensionerName:   req.PensionerName,
		ComplainantName: req.ComplainantName,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Subject:         req.Subject,
		Description:     req.Description,
		Status:          model.GrvNew,
	}

	if req.PPONumber != "" {
		ppo, err := s.repo.PPOMaster.GetByNumber(ctx, req.PPONumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPPONotFound
			}
			return nil, err
		}
		g.PPOMasterID = &ppo.PPOMasterID
	}

	now := time.Now()
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		seq, err := tx.Sequence.Next(ctx, model.SeqGrievance, monthPeriod(now))
		if err != nil {
			return err
		}
		g.GrievanceID = docNumber(model.SeqGrievance, now, seq)
		return tx.Grievance.Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("grievance registered", zap.String("grievance_id", g.GrievanceID))
	return g, nil
}

func (s *grievanceService) Get(ctx context.Context, id string) (*model.Grievance, error) {
	g, err := s.repo.Grievance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGrievanceNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *grievanceService) List(ctx context.Context, req *dto.GrievanceListRequest) ([]model.Grievance, int64, error) {
	req.Normalize()
	return s.repo.Grievance.List(ctx, repository.GrievanceFilters{
		Status:    req.Status,
		PPONumber: req.PPONumber,
		Search:    req.Search,
	}, req.Offset(), req.PageSize)
}

func (s *grievanceService) Update(ctx context.Context, id string, req *dto.UpdateGrievanceRequest) (*model.Grievance, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status == model.GrvClosed {
		return nil, ErrGrievanceClosed
	}
	// Escalated grievances are tracked through their case, not here.
	if g.GeneratedCaseUID != nil && req.Status != nil {
		return nil, ErrAlreadyEscalated
	}

	if req.Status != nil {
		g.Status = *req.Status
	}
	if req.AssignedToID != nil {
		u, err := s.repo.User.GetByID(ctx, *req.AssignedToID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		g.AssignedToID = &u.UserID
	}

	if err := s.repo.Grievance.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Escalate converts a grievance into a formal case, exactly once. The
// unique index on generated_case_uid backs up this check against
// concurrent escalations.
func (s *grievanceService) Escalate(ctx context.Context, actorID, id string, req *dto.EscalateGrievanceRequest) (*model.Grievance, *model.Case, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if g.GeneratedCaseUID != nil {
		return nil, nil, ErrAlreadyEscalated
	}
	if g.Status == model.GrvClosed {
		return nil, nil, ErrGrievanceClosed
	}

	caseReq := &dto.RegisterCaseRequest{
		CaseTypeID:      req.CaseTypeID,
		CaseTitle:       fmt.Sprintf("Grievance %s: %s", g.GrievanceID, g.Subject),
		CaseDescription: g.Description,
		ApplicantName:   firstNonEmpty(g.ComplainantName, g.PensionerName),
		Priority:        req.Priority,
		PensionerName:   g.PensionerName,
		MobileNumber:    g.ContactNumber,
	}
	if g.PPOMaster != nil {
		caseReq.PPONumber = g.PPOMaster.PPONumber
	}

	c, err := s.cases.Register(ctx, actorID, caseReq)
	if err != nil {
		return nil, nil, err
	}

	g.GeneratedCaseUID = &c.ID
	g.Status = model.GrvActionInitiated
	if err := s.repo.Grievance.Update(ctx, g); err != nil {
		// The case exists but the back-reference failed; surface it
		// so an operator can link them by hand.
		s.logger.Error("link escalated case failed",
			zap.String("grievance_id", g.GrievanceID),
			zap.String("case_id", c.CaseID),
			zap.Error(err))
		return nil, nil, err
	}

	s.logger.Info("grievance escalated",
		zap.String("grievance_id", g.GrievanceID),
		zap.String("case_id", c.CaseID))
	return g, c, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

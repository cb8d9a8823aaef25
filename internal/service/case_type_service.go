package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/workflow"
)

var ErrCaseTypeExists = errors.New("case type name already exists")

// CaseTypeService manages the case classification catalogue.
type CaseTypeService interface {
	Create(ctx context.Context, req *dto.CreateCaseTypeRequest) (*model.CaseType, error)
	Get(ctx context.Context, id string) (*model.CaseType, error)
	List(ctx context.Context, activeOnly bool) ([]model.CaseType, error)
	Update(ctx context.Context, id string, req *dto.UpdateCaseTypeRequest) (*model.CaseType, error)
}

type caseTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCaseTypeService creates a CaseTypeService instance.
func NewCaseTypeService(repo *repository.Repository, logger *zap.Logger) CaseTypeService {
	return &caseTypeService{repo: repo, logger: logger}
}

func (s *caseTypeService) Create(ctx context.Context, req *dto.CreateCaseTypeRequest) (*model.CaseType, error) {
	if _, err := s.repo.CaseType.GetByName(ctx, req.Name); err == nil {
		return nil, ErrCaseTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	workflowType := req.WorkflowType
	if workflowType == "" {
		workflowType = workflow.TypeA
	}
	if _, err := workflow.StagesFor(workflowType); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = workflow.PriorityMedium
	}
	expectedDays := req.ExpectedDays
	if expectedDays == 0 {
		expectedDays = workflow.ExpectedDays(priority)
	}

	t := &model.CaseType{
		Name:          req.Name,
		SubCategories: strings.Join(req.SubCategories, ","),
		Priority:      priority,
		ExpectedDays:  expectedDays,
		WorkflowType:  workflowType,
		IsActive:      true,
	}
	if err := s.repo.CaseType.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *caseTypeService) Get(ctx context.Context, id string) (*model.CaseType, error) {
	t, err := s.repo.CaseType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *caseTypeService) List(ctx context.Context, activeOnly bool) ([]model.CaseType, error) {
	return s.repo.CaseType.List(ctx, activeOnly)
}

func (s *caseTypeService) Update(ctx context.Context, id string, req *dto.UpdateCaseTypeRequest) (*model.CaseType, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SubCategories != nil {
		t.SubCategories = strings.Join(*req.SubCategories, ",")
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.ExpectedDays != nil {
		t.ExpectedDays = *req.ExpectedDays
	}
	if req.WorkflowType != nil {
		if _, err := workflow.StagesFor(*req.WorkflowType); err != nil {
			return nil, err
		}
		t.WorkflowType = *req.WorkflowType
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.CaseType.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

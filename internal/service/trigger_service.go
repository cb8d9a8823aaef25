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
)

var ErrTriggerNotFound = errors.New("requisition trigger not found")

// TriggerService manages auto-requisition rules.
type TriggerService interface {
	Create(ctx context.Context, req *dto.CreateTriggerRequest) (*model.RequisitionTrigger, error)
	List(ctx context.Context) ([]model.RequisitionTrigger, error)
	Update(ctx context.Context, id string, req *dto.UpdateTriggerRequest) (*model.RequisitionTrigger, error)
}

type triggerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTriggerService creates a TriggerService instance.
func NewTriggerService(repo *repository.Repository, logger *zap.Logger) TriggerService {
	return &triggerService{repo: repo, logger: logger}
}

func (s *triggerService) Create(ctx context.Context, req *dto.CreateTriggerRequest) (*model.RequisitionTrigger, error) {
	if _, err := s.repo.CaseType.GetByID(ctx, req.CaseTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseTypeNotFound
		}
		return nil, err
	}

	t := &model.RequisitionTrigger{
		CaseTypeID:   req.CaseTypeID,
		TriggerEvent: model.TriggerOnCaseCreation,
		RecordTypes:  strings.Join(req.RecordTypes, ","),
		IsActive:     true,
	}
	if err := s.repo.Trigger.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *triggerService) List(ctx context.Context) ([]model.RequisitionTrigger, error) {
	return s.repo.Trigger.List(ctx)
}

func (s *triggerService) Update(ctx context.Context, id string, req *dto.UpdateTriggerRequest) (*model.RequisitionTrigger, error) {
	t, err := s.repo.Trigger.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTriggerNotFound
		}
		return nil, err
	}

	if req.RecordTypes != nil {
		t.RecordTypes = strings.Join(*req.RecordTypes, ",")
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Trigger.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

package service

import (
	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/config"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/pkg/jwt"
	"github.com/Abhijeet357/case-management/pkg/redis"
)

// Service is the aggregate entry point for all business services.
type Service struct {
	Auth        AuthService
	User        UserService
	Case        CaseService
	CaseType    CaseTypeService
	Requisition RequisitionService
	Record      RecordService
	Grievance   GrievanceService
	Trigger     TriggerService
	Master      MasterService
	Dashboard   DashboardService
	Export      ExportService
	Config      ConfigService
}

// NewService assembles the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	reqSvc := NewRequisitionService(repo, logger)
	caseSvc := NewCaseService(repo, reqSvc, logger)

	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, cache, logger),
		User:        NewUserService(repo, logger),
		Case:        caseSvc,
		CaseType:    NewCaseTypeService(repo, logger),
		Requisition: reqSvc,
		Record:      NewRecordService(repo, logger),
		Grievance:   NewGrievanceService(repo, caseSvc, logger),
		Trigger:     NewTriggerService(repo, logger),
		Master:      NewMasterService(repo, logger),
		Dashboard:   NewDashboardService(cfg, repo, cache, logger),
		Export:      NewExportService(repo, logger),
		Config:      NewConfigService(repo, logger),
	}
}

package handler

import "github.com/Abhijeet357/case-management/internal/service"

// Handler is the aggregate entry point for all HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Case        *CaseHandler
	CaseType    *CaseTypeHandler
	Requisition *RequisitionHandler
	Record      *RecordHandler
	Grievance   *GrievanceHandler
	Master      *MasterHandler
	Dashboard   *DashboardHandler
	Export      *ExportHandler
	Admin       *AdminHandler
}

// NewHandler assembles the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Case:        NewCaseHandler(svc.Case, svc.Dashboard),
		CaseType:    NewCaseTypeHandler(svc.CaseType),
		Requisition: NewRequisitionHandler(svc.Requisition),
		Record:      NewRecordHandler(svc.Record),
		Grievance:   NewGrievanceHandler(svc.Grievance),
		Master:      NewMasterHandler(svc.Master),
		Dashboard:   NewDashboardHandler(svc.Dashboard),
		Export:      NewExportHandler(svc.Export),
		Admin:       NewAdminHandler(svc.Trigger, svc.Config),
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// AdminHandler serves the administration endpoints: auto-requisition
// triggers and the office-wide system configuration.
type AdminHandler struct {
	triggerSvc service.TriggerService
	configSvc  service.ConfigService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(triggerSvc service.TriggerService, configSvc service.ConfigService) *AdminHandler {
	return &AdminHandler{triggerSvc: triggerSvc, configSvc: configSvc}
}

// ── requisition triggers ──

// CreateTrigger registers an auto-requisition rule.
// POST /api/v1/triggers
func (h *AdminHandler) CreateTrigger(c *gin.Context) {
	var req dto.CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	t, err := h.triggerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCaseTypeNotFound) {
			response.NotFound(c, 13002, "case type not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, t)
}

// ListTriggers returns all auto-requisition rules.
// GET /api/v1/triggers
func (h *AdminHandler) ListTriggers(c *gin.Context) {
	list, err := h.triggerSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// UpdateTrigger edits or deactivates an auto-requisition rule.
// PUT /api/v1/triggers/:id
func (h *AdminHandler) UpdateTrigger(c *gin.Context) {
	var req dto.UpdateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	t, err := h.triggerSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrTriggerNotFound) {
			response.NotFound(c, 18003, "requisition trigger not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, t)
}

// ── system configuration ──

// GetConfig returns the office-wide defaults.
// GET /api/v1/system-config
func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, cfg)
}

// UpdateConfig sets the office-wide defaults.
// PUT /api/v1/system-config
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req dto.UpdateSystemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	cfg, err := h.configSvc.Update(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConfigApproverRole):
			response.BadRequest(c, 18101, "default approver must be an AAO")
		case errors.Is(err, service.ErrConfigDHRole):
			response.BadRequest(c, 18102, "default dealing hand must be a DH")
		case errors.Is(err, service.ErrConfigNotRoom):
			response.BadRequest(c, 18103, "configured location is not a record room")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "user not found")
		case errors.Is(err, service.ErrLocationNotFound):
			response.NotFound(c, 15003, "location not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, cfg)
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// CaseHandler serves the case lifecycle endpoints.
type CaseHandler struct {
	caseSvc service.CaseService
	dashSvc service.DashboardService
}

// NewCaseHandler creates a CaseHandler. The dashboard service is used
// to drop the cached summary whenever a case changes.
func NewCaseHandler(caseSvc service.CaseService, dashSvc service.DashboardService) *CaseHandler {
	return &CaseHandler{caseSvc: caseSvc, dashSvc: dashSvc}
}

// Register files a new case and places it on a dealing hand's desk.
// POST /api/v1/cases
func (h *CaseHandler) Register(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	created, err := h.caseSvc.Register(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleCaseError(c, err)
		return
	}

	h.dashSvc.Invalidate(c.Request.Context())
	response.Created(c, created)
}

// Get returns one case with its movement trail.
// GET /api/v1/cases/:uid
func (h *CaseHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	caseRow, movements, err := h.caseSvc.Get(c.Request.Context(), userID, c.Param("uid"))
	if err != nil {
		h.handleCaseError(c, err)
		return
	}

	response.OK(c, gin.H{
		"case":      caseRow,
		"movements": movements,
	})
}

// List returns a filtered page of cases. Non-admin callers only see
// cases held at their rank or below.
// GET /api/v1/cases
func (h *CaseHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CaseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	req.Normalize()

	cases, total, err := h.caseSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, cases, total, req.Page, req.PageSize)
}

// Move advances, returns, reassigns or completes a case.
// POST /api/v1/cases/:uid/move
func (h *CaseHandler) Move(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MoveCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	moved, err := h.caseSvc.Move(c.Request.Context(), userID, c.Param("uid"), &req)
	if err != nil {
		h.handleCaseError(c, err)
		return
	}

	h.dashSvc.Invalidate(c.Request.Context())
	response.OK(c, moved)
}

// AvailableHolders lists the users a case may be handed to for the
// given action.
// GET /api/v1/cases/:uid/holders?action=forward
func (h *CaseHandler) AvailableHolders(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AvailableHoldersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	holders, err := h.caseSvc.AvailableHolders(c.Request.Context(), userID, c.Param("uid"), req.Action)
	if err != nil {
		h.handleCaseError(c, err)
		return
	}

	response.OK(c, holders)
}

// ImportCSV bulk-registers cases from an uploaded CSV file.
// POST /api/v1/cases/import
func (h *CaseHandler) ImportCSV(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "file is required")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.BadRequest(c, 10001, "file could not be read")
		return
	}
	defer f.Close()

	result, err := h.caseSvc.ImportCSV(c.Request.Context(), userID, f)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			response.Forbidden(c, 10003, "operation not permitted for this role")
			return
		}
		// Header or parse problems surface as plain errors.
		response.ErrorWithDetails(c, http.StatusBadRequest, 13009, "csv could not be imported", err.Error())
		return
	}

	h.dashSvc.Invalidate(c.Request.Context())
	response.OK(c, result)
}

// ReconcileDays recomputes pendency counters for all open cases. The same
// routine runs on a schedule; this endpoint lets an administrator force it.
// POST /api/v1/cases/reconcile-days
func (h *CaseHandler) ReconcileDays(c *gin.Context) {
	updated, err := h.caseSvc.ReconcileDayCounters(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	if updated > 0 {
		h.dashSvc.Invalidate(c.Request.Context())
	}
	response.OK(c, gin.H{"updated": updated})
}

func (h *CaseHandler) handleCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCaseNotFound):
		response.NotFound(c, 13001, "case not found")
	case errors.Is(err, service.ErrCaseTypeNotFound):
		response.NotFound(c, 13002, "case type not found")
	case errors.Is(err, service.ErrPPONotFound):
		response.NotFound(c, 13003, "ppo number not found")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 17002, "retiring employee not found")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, "operation not permitted for this role")
	case errors.Is(err, service.ErrNotCaseHolder):
		response.Forbidden(c, 13004, "case is not on your desk")
	case errors.Is(err, service.ErrCaseCompleted):
		response.Conflict(c, 13005, "case is already completed")
	case errors.Is(err, service.ErrInvalidMovement):
		response.BadRequest(c, 13006, "movement not allowed from current stage")
	case errors.Is(err, service.ErrHolderRoleMismatch):
		response.BadRequest(c, 13007, "target holder does not match the required stage")
	case errors.Is(err, service.ErrNoEligibleHolder):
		response.Conflict(c, 13008, "no active holder available for the required stage")
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// GrievanceHandler serves the citizen-grievance endpoints.
type GrievanceHandler struct {
	grvSvc service.GrievanceService
}

// NewGrievanceHandler creates a GrievanceHandler.
func NewGrievanceHandler(grvSvc service.GrievanceService) *GrievanceHandler {
	return &GrievanceHandler{grvSvc: grvSvc}
}

// Register files a new grievance.
// POST /api/v1/grievances
func (h *GrievanceHandler) Register(c *gin.Context) {
	var req dto.RegisterGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	g, err := h.grvSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleGrievanceError(c, err)
		return
	}

	response.Created(c, g)
}

// Get returns one grievance.
// GET /api/v1/grievances/:id
func (h *GrievanceHandler) Get(c *gin.Context) {
	g, err := h.grvSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleGrievanceError(c, err)
		return
	}

	response.OK(c, g)
}

// List returns a filtered page of grievances.
// GET /api/v1/grievances
func (h *GrievanceHandler) List(c *gin.Context) {
	var req dto.GrievanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	req.Normalize()

	list, total, err := h.grvSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// Update edits status or assignment of a grievance.
// PUT /api/v1/grievances/:id
func (h *GrievanceHandler) Update(c *gin.Context) {
	var req dto.UpdateGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	g, err := h.grvSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleGrievanceError(c, err)
		return
	}

	response.OK(c, g)
}

// Escalate converts a grievance into a formal case.
// POST /api/v1/grievances/:id/escalate
func (h *GrievanceHandler) Escalate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.EscalateGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	g, caseRow, err := h.grvSvc.Escalate(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleGrievanceError(c, err)
		return
	}

	response.Created(c, gin.H{
		"grievance": g,
		"case":      caseRow,
	})
}

func (h *GrievanceHandler) handleGrievanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGrievanceNotFound):
		response.NotFound(c, 16001, "grievance not found")
	case errors.Is(err, service.ErrAlreadyEscalated):
		response.Conflict(c, 16002, "grievance has already been escalated to a case")
	case errors.Is(err, service.ErrGrievanceClosed):
		response.Conflict(c, 16003, "grievance is closed")
	case errors.Is(err, service.ErrPPONotFound):
		response.NotFound(c, 13003, "ppo number not found")
	case errors.Is(err, service.ErrCaseTypeNotFound):
		response.NotFound(c, 13002, "case type not found")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, "operation not permitted for this role")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, "user not found")
	default:
		response.InternalError(c)
	}
}

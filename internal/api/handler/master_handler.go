package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// MasterHandler serves the pensioner master-data endpoints: PPO
// records, retiring employees and family pension claims.
type MasterHandler struct {
	masterSvc service.MasterService
}

// NewMasterHandler creates a MasterHandler.
func NewMasterHandler(masterSvc service.MasterService) *MasterHandler {
	return &MasterHandler{masterSvc: masterSvc}
}

// ── PPO master ──

// CreatePPO registers a pensioner master record.
// POST /api/v1/ppos
func (h *MasterHandler) CreatePPO(c *gin.Context) {
	var req dto.CreatePPORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	p, err := h.masterSvc.CreatePPO(c.Request.Context(), &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	response.Created(c, p)
}

// GetPPO looks up a pensioner by PPO number.
// GET /api/v1/ppos/:number
func (h *MasterHandler) GetPPO(c *gin.Context) {
	p, err := h.masterSvc.GetPPO(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	response.OK(c, p)
}

// ListPPOs returns a filtered page of pensioner master records.
// GET /api/v1/ppos
func (h *MasterHandler) ListPPOs(c *gin.Context) {
	var req dto.PPOListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	req.Normalize()

	list, total, err := h.masterSvc.ListPPOs(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// UpdatePPO edits a pensioner master record, addressed by PPO number.
// PUT /api/v1/ppos/:number
func (h *MasterHandler) UpdatePPO(c *gin.Context) {
	var req dto.UpdatePPORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	existing, err := h.masterSvc.GetPPO(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	p, err := h.masterSvc.UpdatePPO(c.Request.Context(), existing.PPOMasterID, &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	response.OK(c, p)
}

// ── retiring employees ──

// CreateRetiringEmployee registers an employee approaching
// superannuation.
// POST /api/v1/retiring-employees
func (h *MasterHandler) CreateRetiringEmployee(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRetiringEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	e, err := h.masterSvc.CreateRetiringEmployee(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	response.Created(c, e)
}

// ListRetiring returns employees retiring inside a date window. The
// window defaults to the coming twelve months.
// GET /api/v1/retiring-employees?from=2026-01-01&to=2026-12-31
func (h *MasterHandler) ListRetiring(c *gin.Context) {
	now := time.Now()
	from, to := now, now.AddDate(1, 0, 0)

	if v := c.Query("from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, 10001, "from must be YYYY-MM-DD")
			return
		}
		from = d
	}
	if v := c.Query("to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, 10001, "to must be YYYY-MM-DD")
			return
		}
		to = d
	}

	list, err := h.masterSvc.ListRetiring(c.Request.Context(), from, to)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// GeneratePPO mints a PPO master record for a retiring employee.
// POST /api/v1/retiring-employees/:uid/generate-ppo
func (h *MasterHandler) GeneratePPO(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.masterSvc.GeneratePPO(c.Request.Context(), userID, c.Param("uid"))
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	response.Created(c, result)
}

// ── family pension claims ──

// GetClaim returns the family pension claim opened by a case.
// GET /api/v1/claims/case/:uid
func (h *MasterHandler) GetClaim(c *gin.Context) {
	claim, err := h.masterSvc.GetClaimByCase(c.Request.Context(), c.Param("uid"))
	if err != nil {
		h.handleMasterError(c, err)
		return
	}

	response.OK(c, claim)
}

// ListClaims returns a page of family pension claims.
// GET /api/v1/claims?status=pending
func (h *MasterHandler) ListClaims(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	page.Normalize()

	list, total, err := h.masterSvc.ListClaims(c.Request.Context(), c.Query("status"), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, page.Page, page.PageSize)
}

// UpdateClaim records claim paperwork progress.
// PUT /api/v1/claims/case/:uid
func (h *MasterHandler) UpdateClaim(c *gin.Context) {
	var req dto.UpdateFamilyClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	claim, err := h.masterSvc.UpdateClaim(c.Request.Context(), c.Param("uid"), &req)
	if err != nil {
		if _, isParse := err.(*time.ParseError); isParse {
			response.BadRequest(c, 10001, "claim_received must be YYYY-MM-DD")
			return
		}
		h.handleMasterError(c, err)
		return
	}

	response.OK(c, claim)
}

func (h *MasterHandler) handleMasterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPPOExists):
		response.Conflict(c, 17001, "ppo number already registered")
	case errors.Is(err, service.ErrPPONotFound):
		response.NotFound(c, 13003, "ppo number not found")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 17002, "retiring employee not found")
	case errors.Is(err, service.ErrEmployeeExists):
		response.Conflict(c, 17003, "employee id already registered")
	case errors.Is(err, service.ErrPPOAlreadyIssued):
		response.Conflict(c, 17004, "ppo already generated for this employee")
	case errors.Is(err, service.ErrClaimNotFound):
		response.NotFound(c, 17005, "family pension claim not found")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, "operation not permitted for this role")
	default:
		response.InternalError(c)
	}
}

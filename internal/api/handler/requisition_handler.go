package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/model"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// RequisitionHandler serves the record-requisition endpoints.
type RequisitionHandler struct {
	reqSvc service.RequisitionService
}

// NewRequisitionHandler creates a RequisitionHandler.
func NewRequisitionHandler(reqSvc service.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{reqSvc: reqSvc}
}

// Create raises a requisition and reserves the matching records.
// POST /api/v1/requisitions
func (h *RequisitionHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	created, err := h.reqSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleRequisitionError(c, err)
		return
	}

	response.Created(c, created)
}

// Get returns one requisition with its records.
// GET /api/v1/requisitions/:id
func (h *RequisitionHandler) Get(c *gin.Context) {
	r, err := h.reqSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRequisitionError(c, err)
		return
	}

	response.OK(c, r)
}

// List returns a filtered page of requisitions.
// GET /api/v1/requisitions
func (h *RequisitionHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RequisitionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	req.Normalize()

	list, total, err := h.reqSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.Page, req.PageSize)
}

// Approve lets the designated AAO approve a pending requisition.
// POST /api/v1/requisitions/:id/approve
func (h *RequisitionHandler) Approve(c *gin.Context) {
	h.decide(c, h.reqSvc.Approve)
}

// Reject refuses a pending requisition and releases its records.
// POST /api/v1/requisitions/:id/reject
func (h *RequisitionHandler) Reject(c *gin.Context) {
	h.decideWithReason(c, h.reqSvc.Reject)
}

// Handover lets a record keeper hand the records to the requester.
// POST /api/v1/requisitions/:id/handover
func (h *RequisitionHandler) Handover(c *gin.Context) {
	h.decide(c, h.reqSvc.Handover)
}

// RequestReturn starts the return leg for records in use.
// POST /api/v1/requisitions/:id/return-request
func (h *RequisitionHandler) RequestReturn(c *gin.Context) {
	h.decide(c, h.reqSvc.RequestReturn)
}

// ApproveReturn lets the approving AAO accept a requested return.
// POST /api/v1/requisitions/:id/return-approve
func (h *RequisitionHandler) ApproveReturn(c *gin.Context) {
	h.decide(c, h.reqSvc.ApproveReturn)
}

// RejectReturn refuses a requested return; the records stay out.
// POST /api/v1/requisitions/:id/return-reject
func (h *RequisitionHandler) RejectReturn(c *gin.Context) {
	h.decideWithReason(c, h.reqSvc.RejectReturn)
}

// AcknowledgeReturn lets a record keeper receive the records back
// into the record room.
// POST /api/v1/requisitions/:id/return-acknowledge
func (h *RequisitionHandler) AcknowledgeReturn(c *gin.Context) {
	h.decide(c, h.reqSvc.AcknowledgeReturn)
}

type requisitionAction func(ctx context.Context, actorID, id string) (*model.RecordRequisition, error)

func (h *RequisitionHandler) decide(c *gin.Context, action requisitionAction) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	r, err := action(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleRequisitionError(c, err)
		return
	}

	response.OK(c, r)
}

type requisitionReasonAction func(ctx context.Context, actorID, id, reason string) (*model.RecordRequisition, error)

func (h *RequisitionHandler) decideWithReason(c *gin.Context, action requisitionReasonAction) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RejectRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "reason is required")
		return
	}

	r, err := action(c.Request.Context(), userID, c.Param("id"), req.Reason)
	if err != nil {
		h.handleRequisitionError(c, err)
		return
	}

	response.OK(c, r)
}

func (h *RequisitionHandler) handleRequisitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequisitionNotFound):
		response.NotFound(c, 14001, "requisition not found")
	case errors.Is(err, service.ErrRequisitionState):
		response.Conflict(c, 14002, "requisition is not in the required state")
	case errors.Is(err, service.ErrNotApprover):
		response.Forbidden(c, 14003, "only the designated approving AAO may decide this requisition")
	case errors.Is(err, service.ErrNotRequester):
		response.Forbidden(c, 14004, "only the requesting user may act on this requisition")
	case errors.Is(err, service.ErrNotRecordKeeper):
		response.Forbidden(c, 14005, "only a record keeper may execute handovers")
	case errors.Is(err, service.ErrNoRecordsAvailable):
		response.Conflict(c, 14006, "no requested records are available")
	case errors.Is(err, service.ErrNoApprover):
		response.Conflict(c, 14007, "no approving AAO available")
	case errors.Is(err, service.ErrNoRecordRoom):
		response.Conflict(c, 14008, "no record room location configured")
	case errors.Is(err, service.ErrPPONotFound):
		response.NotFound(c, 13003, "ppo number not found")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 10003, "operation not permitted for this role")
	default:
		response.InternalError(c)
	}
}

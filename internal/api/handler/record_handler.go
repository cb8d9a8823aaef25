package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// RecordHandler serves the physical-record inventory endpoints.
type RecordHandler struct {
	recordSvc service.RecordService
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(recordSvc service.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

// Create takes a physical record onto the inventory.
// POST /api/v1/records
func (h *RecordHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	record, err := h.recordSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.Created(c, record)
}

// Get returns one record with its movement trail.
// GET /api/v1/records/:id
func (h *RecordHandler) Get(c *gin.Context) {
	record, movements, err := h.recordSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, gin.H{
		"record":    record,
		"movements": movements,
	})
}

// List returns a filtered page of inventory records.
// GET /api/v1/records
func (h *RecordHandler) List(c *gin.Context) {
	var req dto.RecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	req.Normalize()

	records, total, err := h.recordSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, records, total, req.Page, req.PageSize)
}

// Mark flags a record missing, archived or available again.
// PUT /api/v1/records/:id/status
func (h *RecordHandler) Mark(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MarkRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	record, err := h.recordSvc.Mark(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleRecordError(c, err)
		return
	}

	response.OK(c, record)
}

// CreateLocation registers a record room or office.
// POST /api/v1/locations
func (h *RecordHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	loc, err := h.recordSvc.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, loc)
}

// ListLocations returns locations, optionally filtered by type.
// GET /api/v1/locations?type=RECORD_ROOM
func (h *RecordHandler) ListLocations(c *gin.Context) {
	locs, err := h.recordSvc.ListLocations(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, locs)
}

func (h *RecordHandler) handleRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 15001, "record not found")
	case errors.Is(err, service.ErrRecordExists):
		response.Conflict(c, 15002, "a record of this type already exists for the pensioner")
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, 15003, "location not found")
	case errors.Is(err, service.ErrRecordCheckedOut):
		response.Conflict(c, 15004, "record is requisitioned or in use")
	case errors.Is(err, service.ErrNoRecordRoom):
		response.Conflict(c, 14008, "no record room location configured")
	case errors.Is(err, service.ErrPPONotFound):
		response.NotFound(c, 13003, "ppo number not found")
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// CaseTypeHandler serves the case-classification endpoints.
type CaseTypeHandler struct {
	typeSvc service.CaseTypeService
}

// NewCaseTypeHandler creates a CaseTypeHandler.
func NewCaseTypeHandler(typeSvc service.CaseTypeService) *CaseTypeHandler {
	return &CaseTypeHandler{typeSvc: typeSvc}
}

// Create registers a case classification.
// POST /api/v1/case-types
func (h *CaseTypeHandler) Create(c *gin.Context) {
	var req dto.CreateCaseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	ct, err := h.typeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCaseTypeError(c, err)
		return
	}

	response.Created(c, ct)
}

// Get returns one case classification.
// GET /api/v1/case-types/:id
func (h *CaseTypeHandler) Get(c *gin.Context) {
	ct, err := h.typeSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCaseTypeError(c, err)
		return
	}

	response.OK(c, ct)
}

// List returns case classifications.
// GET /api/v1/case-types?active_only=true
func (h *CaseTypeHandler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	list, err := h.typeSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// Update edits a case classification.
// PUT /api/v1/case-types/:id
func (h *CaseTypeHandler) Update(c *gin.Context) {
	var req dto.UpdateCaseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	ct, err := h.typeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleCaseTypeError(c, err)
		return
	}

	response.OK(c, ct)
}

// SubCategories returns the sub-category names of one classification.
// GET /api/v1/case-types/:id/sub-categories
func (h *CaseTypeHandler) SubCategories(c *gin.Context) {
	ct, err := h.typeSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleCaseTypeError(c, err)
		return
	}

	response.OK(c, ct.SubCategoryList())
}

func (h *CaseTypeHandler) handleCaseTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCaseTypeExists):
		response.Conflict(c, 18001, "case type name already exists")
	case errors.Is(err, service.ErrCaseTypeNotFound):
		response.NotFound(c, 13002, "case type not found")
	default:
		response.InternalError(c)
	}
}

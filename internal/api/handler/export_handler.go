package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the file-export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// CaseRegister downloads the case register as a spreadsheet.
// GET /api/v1/export/cases?status=pending&priority=High
func (h *ExportHandler) CaseRegister(c *gin.Context) {
	filters := repository.CaseFilters{
		HolderID:   c.Query("holder_id"),
		CaseTypeID: c.Query("case_type_id"),
		Priority:   c.Query("priority"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}

	data, err := h.exportSvc.CaseRegisterXLSX(c.Request.Context(), filters)
	if err != nil {
		response.InternalError(c)
		return
	}

	filename := fmt.Sprintf("case-register-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// DeadlineCalendar downloads pending-case deadlines as an iCalendar
// feed, optionally scoped to one holder.
// GET /api/v1/export/deadlines?holder_id=xxx
func (h *ExportHandler) DeadlineCalendar(c *gin.Context) {
	holderID := c.Query("holder_id")
	if c.Query("mine") == "true" {
		userID, ok := MustGetUserID(c)
		if !ok {
			return
		}
		holderID = userID
	}

	data, err := h.exportSvc.DeadlineCalendarICS(c.Request.Context(), holderID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="case-deadlines.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

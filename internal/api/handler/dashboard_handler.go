package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/response"
)

// DashboardHandler serves the landing-page summary.
type DashboardHandler struct {
	dashSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashSvc: dashSvc}
}

// Summary returns the dashboard summary for the calling user.
// GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	summary, err := h.dashSvc.Summary(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

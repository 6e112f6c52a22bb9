package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/service"
)

// DashboardHandler serves the aggregate chart data.
type DashboardHandler struct {
	svc *service.DrawingService
}

func NewDashboardHandler(svc *service.DrawingService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Charts GET /api/v1/dashboard/charts
// Status and designer tabulations over the full registry, not just the
// current user's subset.
func (h *DashboardHandler) Charts(c *gin.Context) {
	charts, err := h.svc.ChartData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, charts)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/service"
)

// DrawingHandler serves the drawing registry: listing with filters, per-user
// assignments and notifications, creation, and assignment export.
type DrawingHandler struct {
	svc *service.DrawingService
}

func NewDrawingHandler(svc *service.DrawingService) *DrawingHandler {
	return &DrawingHandler{svc: svc}
}

// List GET /api/v1/drawings?search=&status=&red_flag=
func (h *DrawingHandler) List(c *gin.Context) {
	drawings, err := h.svc.List(c.Request.Context(), service.ListOptions{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		RedFlag: c.Query("red_flag"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"items": drawings})
}

// Create POST /api/v1/drawings
func (h *DrawingHandler) Create(c *gin.Context) {
	var input service.CreateDrawingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	drawing, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, drawing)
}

// ListAssigned GET /api/v1/users/:name/drawings
func (h *DrawingHandler) ListAssigned(c *gin.Context) {
	drawings, err := h.svc.Assignments(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"items": drawings})
}

// Notifications GET /api/v1/users/:name/notifications
func (h *DrawingHandler) Notifications(c *gin.Context) {
	notifications, err := h.svc.Notify(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, notifications)
}

// Export GET /api/v1/users/:name/drawings/export
// Streams the user's assigned drawings as an xlsx download.
func (h *DrawingHandler) Export(c *gin.Context) {
	f, err := h.svc.ExportAssignments(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"your_assignments.xlsx\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write export: "+err.Error())
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/service"
)

// RosterHandler serves the team roster: the identity picker list and the
// role/location detail for a selected name.
type RosterHandler struct {
	svc *service.RosterService
}

func NewRosterHandler(svc *service.RosterService) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// List GET /api/v1/team
func (h *RosterHandler) List(c *gin.Context) {
	names, err := h.svc.Names(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"names": names})
}

// Get GET /api/v1/team/:name
func (h *RosterHandler) Get(c *gin.Context) {
	member, err := h.svc.Lookup(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, member)
}

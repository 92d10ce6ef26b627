package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/streetmarket/backend/internal/application/report"
)

// StatsHandler handles the admin dashboard overview
type StatsHandler struct {
	BaseHandler
	statsService *report.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *report.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Get returns marketplace-wide counters
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.GetPlatformStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

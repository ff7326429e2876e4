package handlers

import (
	"net/http"

	"jurisight/internal/services"
	"jurisight/internal/utils/helpers"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard godoc
// @Summary Aggregate publication stats for the admin dashboard
// @Tags admin-stats
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /api/admin/stats [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, stats)
}

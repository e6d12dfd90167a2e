package controllers

import (
	"net/http"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
)

// StatsController serves the admin dashboard aggregates.
type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// AdminStats returns the headline counters for the admin home page.
func (c *StatsController) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Home(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("admin stats failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// OrderStats returns the per-category order breakdown.
func (c *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.OrderStats(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("order stats failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

package controllers

import (
	"log/slog"
	"net/http"

	"roboticsclub/internal/delivery/http/helpers"
	"roboticsclub/internal/domain"
	"roboticsclub/internal/services"
)

// StatsSuccessResponse is the success envelope for GET /admin/stats (200).
type StatsSuccessResponse struct {
	Data  *domain.DashboardStats `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type StatsController struct {
	Logger  *slog.Logger
	Service *services.StatsService
}

func NewStatsController(logger *slog.Logger, svc *services.StatsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Description Aggregate counts of events, registrations, and membership applications for the admin dashboard.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StatsSuccessResponse "data contains the dashboard stats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/stats [get]
func (c *StatsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Dashboard(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

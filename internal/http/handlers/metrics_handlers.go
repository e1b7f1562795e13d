package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for admin view
// @Tags metrics
// @Produce json
// @Success 200 {object} metrics.Dashboard
// @Failure 500 {object} ErrorResponse
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.dashboard.GetDashboardMetrics()
	if err != nil {
		s.writeServiceError(w, r, err, "fetch metrics")
		return
	}
	if err := writeJSON(w, http.StatusOK, m); err != nil {
		s.log.Error("failed to write JSON response", "error", err)
	}
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

package api

import "net/http"

// HealthResponse: состояние сервиса.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health проверяет доступность базы данных.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Check(r.Context()); err != nil {
		h.Log.Logger.Sugar().Warnw("health check failed", "error", err)
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

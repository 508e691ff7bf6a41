package handler

import (
	"audio2score/internal/http/handler/middleware"
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

// HandleRoot identifies the service.
//
// @Summary Service info
// @Tags System
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *ScoreHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, RootResponse{
		Message:   "Audio2Score Backend API",
		Version:   apiVersion,
		Status:    "running",
		Framework: "net/http",
	}, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

// HandleHealth pings the database.
//
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *ScoreHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		h.logs.Errorw("database ping failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		h.respond(w, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			API:      "operational",
		}, http.StatusServiceUnavailable, requestId)
		return
	}

	h.respond(w, HealthResponse{
		Status:   "healthy",
		Database: "connected",
		API:      "operational",
	}, http.StatusOK, requestId)
}

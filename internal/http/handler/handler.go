package handler

import (
	"audio2score/internal/core"
	"audio2score/internal/http/handler/middleware"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Register     = "POST /api/auth/register"
	Login        = "POST /api/auth/login"
	Token        = "POST /api/auth/token"
	Me           = "GET /api/auth/me"
	Upload       = "POST /api/midi/upload"
	Library      = "GET /api/midi/library"
	GetMidi      = "GET /api/midi/{id}"
	DownloadMidi = "GET /api/midi/{id}/download"
	DeleteMidi   = "DELETE /api/midi/{id}"
	Root         = "GET /{$}"
	Health       = "GET /health"
	Docs         = "GET /docs/"
)

const (
	apiVersion      = "1.0.0"
	multipartMemory = 32 << 20
)

type ScoreHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	scorer           ScoreService
	health           HealthChecker
	maxUploadBytes   int64
}

func NewScoreHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, scoreService ScoreService, health HealthChecker, maxUploadBytes int64) *ScoreHandler {
	return &ScoreHandler{
		logs:             logger,
		requestValidator: requestValidator,
		scorer:           scoreService,
		health:           health,
		maxUploadBytes:   maxUploadBytes,
	}
}

func (h *ScoreHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// fail writes an error envelope. Details of server side failures stay in the
// logs.
func (h *ScoreHandler) fail(w http.ResponseWriter, message string, err error, requestId string) {
	code := statusFor(err)
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	}
	h.respond(w, resp, code, requestId)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidInput),
		errors.Is(err, core.ErrUserAlreadyExists),
		errors.Is(err, core.ErrUnsupportedMediaType):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrInvalidOrExpiredToken),
		errors.Is(err, core.ErrUserNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrMidiNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// currentUser returns the user resolved by the auth middleware. Routes are
// only reachable through it, so a missing user means a wiring mistake.
func (h *ScoreHandler) currentUser(w http.ResponseWriter, r *http.Request, requestId string) (core.UserProfile, bool) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "Not authenticated",
		}, http.StatusForbidden, requestId)
		return core.UserProfile{}, false
	}
	return user, true
}

// midiID parses the {id} path segment. Anything that is not an unsigned
// integer cannot name a record, so it is reported as not found.
func midiID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil {
		return 0, core.ErrMidiNotFound
	}
	return uint(id), nil
}

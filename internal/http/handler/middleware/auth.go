package middleware

import (
	"audio2score/internal/core"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	userKey      contextKey = "user"
	bearerPrefix            = "bearer "
)

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate lets a request through only with a valid bearer token and
// stores the resolved user in its context. A request without credentials is
// forbidden; one with bad credentials is unauthorized.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestIDFrom(r.Context())

		header := r.Header.Get("Authorization")
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			m.reject(w, http.StatusForbidden, "Not authenticated", requestId)
			return
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			m.reject(w, http.StatusForbidden, "Not authenticated", requestId)
			return
		}

		user, err := m.verifier.VerifyToken(r.Context(), token)
		if err != nil {
			m.logs.Errorw("token rejected",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestId)
			w.Header().Set("WWW-Authenticate", "Bearer")
			m.reject(w, http.StatusUnauthorized, "Could not validate credentials", requestId)
			return
		}

		ctx := WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, code int, detail, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	resp := errorResponse{
		Message: "Authentication failed",
		Error:   detail,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// UserFrom returns the user stored by Authenticate.
func UserFrom(ctx context.Context) (core.UserProfile, bool) {
	user, ok := ctx.Value(userKey).(core.UserProfile)
	return user, ok
}

// WithUser returns a copy of ctx carrying user, as Authenticate does.
func WithUser(ctx context.Context, user core.UserProfile) context.Context {
	return context.WithValue(ctx, userKey, user)
}

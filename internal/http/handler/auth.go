package handler

import (
	"audio2score/internal/http/handler/middleware"
	"audio2score/internal/http/payload"
	"fmt"
	"net/http"
)

// HandleRegister creates an account and returns a session for it.
//
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body payload.RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} Response "Invalid payload or user already exists"
// @Router /api/auth/register [post]
func (h *ScoreHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	session, err := h.scorer.Register(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Registration failed", err, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"username", req.Username,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user registered",
		"user_id", session.User.ID,
		"handler", Register,
		"request_id", requestId)

	h.respond(w, AuthResponse{
		Message: "User registered successfully",
		Token:   session.Token,
		User:    session.User,
	}, http.StatusCreated, requestId)
}

// HandleLogin exchanges credentials for a session.
//
// @Summary Log in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body payload.LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} Response
// @Failure 401 {object} Response "Incorrect username or password"
// @Router /api/auth/login [post]
func (h *ScoreHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.scorer.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		h.authFailed(w, err, "Login failed", requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, AuthResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    session.User,
	}, http.StatusOK, requestId)
}

// HandleToken is the OAuth2 password flow used by the interactive docs.
//
// @Summary Obtain an access token
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/auth/token [post]
func (h *ScoreHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	err := r.ParseForm()
	req := payload.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid form: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse token form",
			"error", err,
			"handler", Token,
			"request_id", requestId)
		return
	}

	session, err := h.scorer.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		h.authFailed(w, err, "Login failed", requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Token,
			"request_id", requestId)
		return
	}

	h.respond(w, TokenResponse{
		AccessToken: session.Token,
		TokenType:   "bearer",
	}, http.StatusOK, requestId)
}

// HandleMe returns the profile of the caller.
//
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} core.UserProfile
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /api/auth/me [get]
func (h *ScoreHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, ok := h.currentUser(w, r, requestId)
	if !ok {
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *ScoreHandler) authFailed(w http.ResponseWriter, err error, message, requestId string) {
	if statusFor(err) == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	h.fail(w, message, err, requestId)
}

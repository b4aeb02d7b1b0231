package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopkit/shopkit/internal/auth"
	"github.com/shopkit/shopkit/internal/handler/dto"
	"github.com/shopkit/shopkit/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signup handles POST /api/users/signup.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	input := service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	token, user, err := h.svc.Signup(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_signed_up",
		"user_id", user.ID,
		"request_id", requestIDFrom(r),
	)

	writeJSON(w, http.StatusCreated, dto.SignupResponse{
		Token:   token,
		Message: "User created successfully",
	})
}

// Signin handles POST /api/users/signin.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	input := service.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	}

	token, user, err := h.svc.Signin(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_signed_in",
		"user_id", user.ID,
		"request_id", requestIDFrom(r),
	)

	writeJSON(w, http.StatusOK, dto.SigninResponse{
		Token: token,
		User:  user.Public(),
	})
}

// Me handles GET /api/users/me. Requires the auth middleware.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
		return
	}

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

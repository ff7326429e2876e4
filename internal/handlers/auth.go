package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"jurisight/internal/config"
	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/reqctx"
	"jurisight/internal/services"
	"jurisight/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterRequest true "Registration payload"
// @Success 201 {string} string "Registered"
// @Failure 400 {string} string "Validation error"
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON on register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user := &models.User{
		Email:    req.Email,
		FullName: req.FullName,
	}
	if err := h.authService.RegisterUser(r.Context(), user, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("user registered", zap.Int64("user_id", user.ID))
	helpers.JSON(w, http.StatusCreated, "registered")
}

// Login godoc
// @Summary Log in and receive access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Invalid email or password"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON on login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	accessTTL, _ := time.ParseDuration(h.cfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(h.cfg.RefreshTokenTTL)

	access, refresh, err := h.authService.LoginUser(r.Context(), req.Email, req.Password, h.cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		var permErr *services.PermissionError
		if errors.As(err, &permErr) {
			helpers.Error(w, http.StatusForbidden, permErr.Reason)
			return
		}
		log.Warn("login failed", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{AccessToken: access, RefreshToken: refresh})
}

// Refresh godoc
// @Summary Rotate the refresh token and issue a new access token
// @Tags auth
// @Produce json
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Invalid refresh token"
// @Router /api/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	accessTTL, _ := time.ParseDuration(h.cfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(h.cfg.RefreshTokenTTL)

	access, refresh, err := h.authService.Refresh(r.Context(), token, h.cfg.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("token refresh rejected", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{AccessToken: access, RefreshToken: refresh})
}

// Logout godoc
// @Summary Log out (revoke the presented refresh token)
// @Tags auth
// @Security ApiKeyAuth
// @Success 200 {string} string "Logged out"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "missing token")
		return
	}

	if err := h.authService.Logout(r.Context(), userID, token); err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "logged out")
}

// Profile godoc
// @Summary Get the current user's profile
// @Tags profile
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {string} string "Unauthorized"
// @Router /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// ListUsers godoc
// @Summary List accounts (admin)
// @Tags admin-users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.User
// @Router /api/admin/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.GetUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Change an account's role, activation or name (admin)
// @Tags admin-users
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "User ID"
// @Param input body models.UpdateUserRequest true "Fields to change"
// @Success 200 {string} string "Updated"
// @Failure 400 {string} string "Validation error"
// @Router /api/admin/users/{id} [patch]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.authService.UpdateUser(r.Context(), id, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user updated", zap.Int64("user_id", id))
	helpers.JSON(w, http.StatusOK, "updated")
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

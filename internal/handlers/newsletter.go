package handlers

import (
	"encoding/json"
	"net/http"

	"jurisight/internal/logger"
	"jurisight/internal/services"
	"jurisight/internal/utils/helpers"

	"go.uber.org/zap"
)

type NewsletterHandler struct {
	newsletter *services.NewsletterService
}

func NewNewsletterHandler(newsletter *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe godoc
// @Summary Subscribe an email to the publication newsletter
// @Tags newsletter
// @Accept json
// @Success 200 {string} string "Subscribed"
// @Failure 400 {string} string "Validation error"
// @Router /api/newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.newsletter.Subscribe(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("newsletter subscription", zap.String("email", req.Email))
	helpers.JSON(w, http.StatusOK, "subscribed")
}

// Unsubscribe godoc
// @Summary Remove an email from the newsletter
// @Tags newsletter
// @Accept json
// @Success 200 {string} string "Unsubscribed"
// @Failure 400 {string} string "Validation error"
// @Router /api/newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.newsletter.Unsubscribe(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "unsubscribed")
}

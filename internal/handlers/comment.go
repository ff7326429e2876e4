package handlers

import (
	"encoding/json"
	"net/http"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/services"
	"jurisight/internal/utils/helpers"

	"go.uber.org/zap"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CreateComment godoc
// @Summary Leave editorial feedback on an article
// @Tags editorial-comments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param input body models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} models.EditorialComment
// @Failure 400 {string} string "Validation error"
// @Failure 404 {string} string "Article not found"
// @Router /api/dashboard/articles/{id}/comments [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	articleID, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid article id")
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	comment, err := h.comments.Create(r.Context(), articleID, actorID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("editorial comment created",
		zap.Int64("article_id", articleID), zap.Bool("internal", comment.IsInternal))
	helpers.JSON(w, http.StatusCreated, comment)
}

// ListComments godoc
// @Summary List editorial feedback on an article
// @Description Internal notes are included only for editors and admins.
// @Tags editorial-comments
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {array} models.EditorialComment
// @Failure 403 {string} string "Forbidden"
// @Router /api/dashboard/articles/{id}/comments [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	articleID, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid article id")
		return
	}

	list, err := h.comments.List(r.Context(), actorID, role, articleID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

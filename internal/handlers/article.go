package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/services"
	"jurisight/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articles services.ArticleService
}

func NewArticleHandler(articles services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// CreateArticle godoc
// @Summary Create a draft article
// @Tags dashboard-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Article payload"
// @Success 201 {object} models.Article
// @Failure 400 {string} string "Invalid payload"
// @Router /api/dashboard/articles [post]
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	actorID, role, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid JSON on article create", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	article, err := h.articles.Create(r.Context(), actorID, role, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("article created", zap.Int64("article_id", article.ID))
	helpers.JSON(w, http.StatusCreated, article)
}

// ListDashboardArticles godoc
// @Summary List articles visible to the current user
// @Tags dashboard-articles
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Article
// @Router /api/dashboard/articles [get]
func (h *ArticleHandler) ListDashboardArticles(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := pagination(r, 20)
	list, err := h.articles.ListDashboard(r.Context(), actorID, role, limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetDashboardArticle godoc
// @Summary Get an article with author and section for the dashboard
// @Tags dashboard-articles
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.ArticleDetail
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /api/dashboard/articles/{id} [get]
func (h *ArticleHandler) GetDashboardArticle(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid article id")
		return
	}

	detail, err := h.articles.GetDashboard(r.Context(), actorID, role, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, detail)
}

// UpdateArticle godoc
// @Summary Update an article, or change only its workflow status
// @Description A body holding exactly the status key is treated as a status
// @Description transition; any other body is a full update.
// @Tags dashboard-articles
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param input body models.UpdateArticleRequest true "Article payload"
// @Success 200 {object} models.Article
// @Failure 400 {string} string "Invalid payload"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /api/dashboard/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	actorID, role, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid article id")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Warn("invalid JSON on article update", zap.Int64("article_id", id), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Exactly one key, and that key is status: route to the transition path
	// so a full update never masquerades as a status change.
	if statusRaw, found := raw["status"]; found && len(raw) == 1 {
		var target string
		if err := json.Unmarshal(statusRaw, &target); err != nil {
			helpers.Error(w, http.StatusBadRequest, "status must be a string")
			return
		}
		article, err := h.articles.UpdateStatus(r.Context(), actorID, role, id, target)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		log.Info("article status changed", zap.Int64("article_id", id), zap.String("status", string(article.Status)))
		helpers.JSON(w, http.StatusOK, article)
		return
	}

	var req models.UpdateArticleRequest
	if err := reencode(raw, &req); err != nil {
		log.Warn("invalid update payload", zap.Int64("article_id", id), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	article, err := h.articles.UpdateFull(r.Context(), actorID, role, id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("article updated", zap.Int64("article_id", id))
	helpers.JSON(w, http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article and its dependent rows
// @Tags dashboard-articles
// @Security ApiKeyAuth
// @Param id path int true "Article ID"
// @Success 200 {string} string "Deleted"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /api/dashboard/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actorFromCtx(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.articles.Delete(r.Context(), actorID, role, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "deleted")
}

// ListPublicArticles godoc
// @Summary List published articles
// @Tags articles
// @Produce json
// @Param section query int false "Section ID"
// @Param tag query string false "Tag slug"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Article
// @Router /api/articles [get]
func (h *ArticleHandler) ListPublicArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r, 20)

	var sectionID *int64
	if s := r.URL.Query().Get("section"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			helpers.Error(w, http.StatusBadRequest, "invalid section id")
			return
		}
		sectionID = &id
	}

	list, err := h.articles.ListPublished(r.Context(), sectionID, r.URL.Query().Get("tag"), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetPublicArticle godoc
// @Summary Get a published article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "Not found"
// @Router /api/articles/{slug} [get]
func (h *ArticleHandler) GetPublicArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetPublishedBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func pagination(r *http.Request, defLimit int) (limit, offset int) {
	limit = defLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

// reencode round-trips an already decoded raw object into its typed form.
func reencode(raw map[string]json.RawMessage, dst any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

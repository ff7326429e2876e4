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

type TaxonomyHandler struct {
	taxonomy *services.TaxonomyService
}

func NewTaxonomyHandler(taxonomy *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomy: taxonomy}
}

type sectionRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	IsActive    *bool  `json:"is_active"`
}

// ListSections godoc
// @Summary List sections with their published article counts
// @Tags sections
// @Produce json
// @Success 200 {array} models.SectionWithCount
// @Router /api/sections [get]
func (h *TaxonomyHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.taxonomy.ListSections(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, sections)
}

// CreateSection godoc
// @Summary Create a section (admin)
// @Tags admin-sections
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body sectionRequest true "Section payload"
// @Success 201 {object} models.Section
// @Failure 400 {string} string "Validation error"
// @Router /api/admin/sections [post]
func (h *TaxonomyHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	sec := sectionFromRequest(req)
	id, err := h.taxonomy.CreateSection(r.Context(), sec)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	sec.ID = id

	logger.WithCtx(r.Context()).Info("section created", zap.Int64("section_id", id), zap.String("slug", sec.Slug))
	helpers.JSON(w, http.StatusCreated, sec)
}

// UpdateSection godoc
// @Summary Update a section (admin)
// @Tags admin-sections
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "Section ID"
// @Param input body sectionRequest true "Section payload"
// @Success 200 {string} string "Updated"
// @Failure 404 {string} string "Not found"
// @Router /api/admin/sections/{id} [put]
func (h *TaxonomyHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}

	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	sec := sectionFromRequest(req)
	sec.ID = id
	if err := h.taxonomy.UpdateSection(r.Context(), sec); err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "updated")
}

// DeleteSection godoc
// @Summary Delete a section (admin)
// @Tags admin-sections
// @Security ApiKeyAuth
// @Param id path int true "Section ID"
// @Success 200 {string} string "Deleted"
// @Failure 404 {string} string "Not found"
// @Router /api/admin/sections/{id} [delete]
func (h *TaxonomyHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := h.taxonomy.DeleteSection(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "deleted")
}

// ListTags godoc
// @Summary List all tags
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /api/tags [get]
func (h *TaxonomyHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.taxonomy.ListTags(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, tags)
}

func sectionFromRequest(req sectionRequest) *models.Section {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Section{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		IsActive:    active,
	}
}

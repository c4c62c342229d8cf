package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type termService interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, id int64) (*models.Term, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]models.Term, error)
	Create(ctx context.Context, req dto.TermRequest) (*models.Term, error)
	Update(ctx context.Context, id int64, req dto.TermRequest) (*models.Term, error)
	Delete(ctx context.Context, id int64) error
}

// TermHandler exposes term endpoints.
type TermHandler struct {
	service termService
}

// NewTermHandler builds a term handler.
func NewTermHandler(service termService) *TermHandler {
	return &TermHandler{service: service}
}

// List godoc
// @Summary List terms
// @Tags Terms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /Term [get]
func (h *TermHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get term
// @Tags Terms
// @Produce json
// @Param id path int true "Term ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Term/{id} [get]
func (h *TermHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	term, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, term)
}

// ListBySchool godoc
// @Summary List the terms of a school
// @Tags Terms
// @Produce json
// @Param schoolId path int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /Term/school/{schoolId} [get]
func (h *TermHandler) ListBySchool(c *gin.Context) {
	schoolID, ok := pathID(c, "schoolId")
	if !ok {
		return
	}
	terms, err := h.service.ListBySchool(c.Request.Context(), schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, terms)
}

// Create godoc
// @Summary Create term
// @Tags Terms
// @Accept json
// @Produce json
// @Param payload body dto.TermRequest true "Term payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /Term [post]
func (h *TermHandler) Create(c *gin.Context) {
	var req dto.TermRequest
	if !bindJSON(c, &req, "term") {
		return
	}
	term, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, term.ID), term)
}

// Update godoc
// @Summary Replace term
// @Tags Terms
// @Accept json
// @Produce json
// @Param id path int true "Term ID"
// @Param payload body dto.TermRequest true "Term payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Term/{id} [put]
func (h *TermHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TermRequest
	if !bindJSON(c, &req, "term") {
		return
	}
	term, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, term)
}

// Delete godoc
// @Summary Delete term
// @Tags Terms
// @Param id path int true "Term ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /Term/{id} [delete]
func (h *TermHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

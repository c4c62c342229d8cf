package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type assessmentTypeService interface {
	List(ctx context.Context) ([]models.AssessmentType, error)
	Get(ctx context.Context, id int64) (*models.AssessmentType, error)
	Create(ctx context.Context, req dto.AssessmentTypeRequest) (*models.AssessmentType, error)
	Update(ctx context.Context, id int64, req dto.AssessmentTypeRequest) (*models.AssessmentType, error)
	Delete(ctx context.Context, id int64) error
}

// AssessmentTypeHandler exposes assessment type endpoints.
type AssessmentTypeHandler struct {
	service assessmentTypeService
}

// NewAssessmentTypeHandler builds a assessment type handler.
func NewAssessmentTypeHandler(service assessmentTypeService) *AssessmentTypeHandler {
	return &AssessmentTypeHandler{service: service}
}

// List godoc
// @Summary List assessment types
// @Tags Assessments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /AssessmentType [get]
func (h *AssessmentTypeHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get assessment type
// @Tags Assessments
// @Produce json
// @Param id path int true "AssessmentType ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /AssessmentType/{id} [get]
func (h *AssessmentTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create assessment type
// @Tags Assessments
// @Accept json
// @Produce json
// @Param payload body dto.AssessmentTypeRequest true "AssessmentType payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /AssessmentType [post]
func (h *AssessmentTypeHandler) Create(c *gin.Context) {
	var req dto.AssessmentTypeRequest
	if !bindJSON(c, &req, "assessment type") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, item.ID), item)
}

// Update godoc
// @Summary Replace assessment type
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "AssessmentType ID"
// @Param payload body dto.AssessmentTypeRequest true "AssessmentType payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /AssessmentType/{id} [put]
func (h *AssessmentTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AssessmentTypeRequest
	if !bindJSON(c, &req, "assessment type") {
		return
	}
	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete assessment type
// @Tags Assessments
// @Param id path int true "AssessmentType ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /AssessmentType/{id} [delete]
func (h *AssessmentTypeHandler) Delete(c *gin.Context) {
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

type termAssessmentService interface {
	List(ctx context.Context) ([]models.TermAssessment, error)
	Get(ctx context.Context, id int64) (*models.TermAssessment, error)
	Create(ctx context.Context, req dto.TermAssessmentRequest) (*models.TermAssessment, error)
	Update(ctx context.Context, id int64, req dto.TermAssessmentRequest) (*models.TermAssessment, error)
	Delete(ctx context.Context, id int64) error
}

// TermAssessmentHandler exposes term assessment endpoints.
type TermAssessmentHandler struct {
	service termAssessmentService
}

// NewTermAssessmentHandler builds a term assessment handler.
func NewTermAssessmentHandler(service termAssessmentService) *TermAssessmentHandler {
	return &TermAssessmentHandler{service: service}
}

// List godoc
// @Summary List term assessments
// @Tags Assessments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /TermAssessment [get]
func (h *TermAssessmentHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get term assessment
// @Tags Assessments
// @Produce json
// @Param id path int true "TermAssessment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /TermAssessment/{id} [get]
func (h *TermAssessmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create term assessment
// @Tags Assessments
// @Accept json
// @Produce json
// @Param payload body dto.TermAssessmentRequest true "TermAssessment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /TermAssessment [post]
func (h *TermAssessmentHandler) Create(c *gin.Context) {
	var req dto.TermAssessmentRequest
	if !bindJSON(c, &req, "term assessment") {
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, item.ID), item)
}

// Update godoc
// @Summary Replace term assessment
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "TermAssessment ID"
// @Param payload body dto.TermAssessmentRequest true "TermAssessment payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /TermAssessment/{id} [put]
func (h *TermAssessmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TermAssessmentRequest
	if !bindJSON(c, &req, "term assessment") {
		return
	}
	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete term assessment
// @Tags Assessments
// @Param id path int true "TermAssessment ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /TermAssessment/{id} [delete]
func (h *TermAssessmentHandler) Delete(c *gin.Context) {
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

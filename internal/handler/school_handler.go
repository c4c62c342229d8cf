package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type schoolService interface {
	List(ctx context.Context) ([]models.School, error)
	Get(ctx context.Context, id int64) (*models.School, error)
	Create(ctx context.Context, req dto.SchoolRequest) (*models.School, error)
	Update(ctx context.Context, id int64, req dto.SchoolRequest) (*models.School, error)
	Delete(ctx context.Context, id int64) error
}

// SchoolHandler exposes school endpoints.
type SchoolHandler struct {
	service schoolService
}

// NewSchoolHandler builds a school handler.
func NewSchoolHandler(service schoolService) *SchoolHandler {
	return &SchoolHandler{service: service}
}

// List godoc
// @Summary List schools
// @Tags Schools
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /School [get]
func (h *SchoolHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get school
// @Tags Schools
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /School/{id} [get]
func (h *SchoolHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	school, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, school)
}

// Create godoc
// @Summary Create school
// @Tags Schools
// @Accept json
// @Produce json
// @Param payload body dto.SchoolRequest true "School payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /School [post]
func (h *SchoolHandler) Create(c *gin.Context) {
	var req dto.SchoolRequest
	if !bindJSON(c, &req, "school") {
		return
	}
	school, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, school.ID), school)
}

// Update godoc
// @Summary Replace school
// @Tags Schools
// @Accept json
// @Produce json
// @Param id path int true "School ID"
// @Param payload body dto.SchoolRequest true "School payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /School/{id} [put]
func (h *SchoolHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SchoolRequest
	if !bindJSON(c, &req, "school") {
		return
	}
	school, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, school)
}

// Delete godoc
// @Summary Delete school
// @Tags Schools
// @Param id path int true "School ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /School/{id} [delete]
func (h *SchoolHandler) Delete(c *gin.Context) {
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

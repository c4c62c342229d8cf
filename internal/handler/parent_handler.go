package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type parentService interface {
	List(ctx context.Context) ([]models.Parent, error)
	Get(ctx context.Context, id int64) (*models.Parent, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]models.Parent, error)
	Student(ctx context.Context, parentID int64) (*models.User, error)
	Create(ctx context.Context, req dto.ParentRequest) (*models.Parent, error)
	Update(ctx context.Context, id int64, req dto.ParentRequest) (*models.Parent, error)
	Delete(ctx context.Context, id int64) error
}

// ParentHandler exposes parent endpoints.
type ParentHandler struct {
	service parentService
}

// NewParentHandler builds a parent handler.
func NewParentHandler(service parentService) *ParentHandler {
	return &ParentHandler{service: service}
}

// List godoc
// @Summary List parents
// @Tags Parents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /Parent [get]
func (h *ParentHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get parent
// @Tags Parents
// @Produce json
// @Param id path int true "Parent ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Parent/{id} [get]
func (h *ParentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	parent, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, parent)
}

// ListBySchool godoc
// @Summary List the parents registered with a school
// @Tags Parents
// @Produce json
// @Param schoolId path int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /Parent/school/{schoolId} [get]
func (h *ParentHandler) ListBySchool(c *gin.Context) {
	schoolID, ok := pathID(c, "schoolId")
	if !ok {
		return
	}
	parents, err := h.service.ListBySchool(c.Request.Context(), schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, parents)
}

// Student godoc
// @Summary Get the student a parent is attached to
// @Tags Parents
// @Produce json
// @Param id path int true "Parent ID"
// @Success 200 {object} response.Envelope
// @Router /Parent/{id}/student [get]
func (h *ParentHandler) Student(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	student, err := h.service.Student(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Create godoc
// @Summary Create parent
// @Tags Parents
// @Accept json
// @Produce json
// @Param payload body dto.ParentRequest true "Parent payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /Parent [post]
func (h *ParentHandler) Create(c *gin.Context) {
	var req dto.ParentRequest
	if !bindJSON(c, &req, "parent") {
		return
	}
	parent, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, parent.ID), parent)
}

// Update godoc
// @Summary Replace parent
// @Tags Parents
// @Accept json
// @Produce json
// @Param id path int true "Parent ID"
// @Param payload body dto.ParentRequest true "Parent payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Parent/{id} [put]
func (h *ParentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ParentRequest
	if !bindJSON(c, &req, "parent") {
		return
	}
	parent, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, parent)
}

// Delete godoc
// @Summary Delete parent
// @Tags Parents
// @Param id path int true "Parent ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /Parent/{id} [delete]
func (h *ParentHandler) Delete(c *gin.Context) {
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

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type quarterlyGradeService interface {
	List(ctx context.Context) ([]models.QuarterlyGrade, error)
	Get(ctx context.Context, id int64) (*models.QuarterlyGrade, error)
	ListByStudentAndTerm(ctx context.Context, studentID, termID int64) ([]models.QuarterlyGrade, error)
	Create(ctx context.Context, req dto.QuarterlyGradeRequest) (*models.QuarterlyGrade, error)
	Update(ctx context.Context, id int64, req dto.QuarterlyGradeRequest) (*models.QuarterlyGrade, error)
	Delete(ctx context.Context, id int64) error
}

// QuarterlyGradeHandler exposes quarterly grade endpoints.
type QuarterlyGradeHandler struct {
	service quarterlyGradeService
}

// NewQuarterlyGradeHandler builds a quarterly grade handler.
func NewQuarterlyGradeHandler(service quarterlyGradeService) *QuarterlyGradeHandler {
	return &QuarterlyGradeHandler{service: service}
}

// List godoc
// @Summary List quarterly grades
// @Tags Quarterly Grades
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /QuarterlyGrade [get]
func (h *QuarterlyGradeHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get quarterly grade
// @Tags Quarterly Grades
// @Produce json
// @Param id path int true "QuarterlyGrade ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /QuarterlyGrade/{id} [get]
func (h *QuarterlyGradeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	grade, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

// ListByStudentAndTerm godoc
// @Summary List a student's quarterly grades for a term
// @Tags Quarterly Grades
// @Produce json
// @Param studentId path int true "Student ID"
// @Param termId path int true "Term ID"
// @Success 200 {object} response.Envelope
// @Router /QuarterlyGrade/student/{studentId}/term/{termId} [get]
func (h *QuarterlyGradeHandler) ListByStudentAndTerm(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	termID, ok := pathID(c, "termId")
	if !ok {
		return
	}
	grades, err := h.service.ListByStudentAndTerm(c.Request.Context(), studentID, termID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}

// Create godoc
// @Summary Create quarterly grade
// @Tags Quarterly Grades
// @Accept json
// @Produce json
// @Param payload body dto.QuarterlyGradeRequest true "QuarterlyGrade payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /QuarterlyGrade [post]
func (h *QuarterlyGradeHandler) Create(c *gin.Context) {
	var req dto.QuarterlyGradeRequest
	if !bindJSON(c, &req, "quarterly grade") {
		return
	}
	grade, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, grade.ID), grade)
}

// Update godoc
// @Summary Replace quarterly grade
// @Tags Quarterly Grades
// @Accept json
// @Produce json
// @Param id path int true "QuarterlyGrade ID"
// @Param payload body dto.QuarterlyGradeRequest true "QuarterlyGrade payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /QuarterlyGrade/{id} [put]
func (h *QuarterlyGradeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuarterlyGradeRequest
	if !bindJSON(c, &req, "quarterly grade") {
		return
	}
	grade, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

// Delete godoc
// @Summary Delete quarterly grade
// @Tags Quarterly Grades
// @Param id path int true "QuarterlyGrade ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /QuarterlyGrade/{id} [delete]
func (h *QuarterlyGradeHandler) Delete(c *gin.Context) {
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

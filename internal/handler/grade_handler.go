package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type gradeService interface {
	List(ctx context.Context) ([]models.Grade, error)
	Get(ctx context.Context, id int64) (*models.Grade, error)
	ListByStudentAndTerm(ctx context.Context, studentID, termID int64) ([]models.Grade, error)
	ListByClassSubjectAndTerm(ctx context.Context, classSubjectID, termID int64) ([]models.Grade, error)
	ListByStudentAndClassSubject(ctx context.Context, studentID, classSubjectID int64) ([]models.Grade, error)
	Create(ctx context.Context, req dto.GradeRequest) (*models.Grade, error)
	Update(ctx context.Context, id int64, req dto.GradeRequest) (*models.Grade, error)
	Delete(ctx context.Context, id int64) error
}

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	service gradeService
}

// NewGradeHandler builds a grade handler.
func NewGradeHandler(service gradeService) *GradeHandler {
	return &GradeHandler{service: service}
}

// List godoc
// @Summary List grades
// @Tags Grades
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /Grade [get]
func (h *GradeHandler) List(c *gin.Context) {
	grades, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}

// Get godoc
// @Summary Get grade
// @Tags Grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Grade/{id} [get]
func (h *GradeHandler) Get(c *gin.Context) {
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
// @Summary List a student's grades dated inside a term
// @Tags Grades
// @Produce json
// @Param studentId path int true "Student ID"
// @Param termId path int true "Term ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Grade/student/{studentId}/term/{termId} [get]
func (h *GradeHandler) ListByStudentAndTerm(c *gin.Context) {
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

// ListByClassSubjectAndTerm godoc
// @Summary List a class subject's grades dated inside a term
// @Tags Grades
// @Produce json
// @Param classSubjectId path int true "Class subject ID"
// @Param termId path int true "Term ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Grade/classsubject/{classSubjectId}/term/{termId} [get]
func (h *GradeHandler) ListByClassSubjectAndTerm(c *gin.Context) {
	classSubjectID, ok := pathID(c, "classSubjectId")
	if !ok {
		return
	}
	termID, ok := pathID(c, "termId")
	if !ok {
		return
	}
	grades, err := h.service.ListByClassSubjectAndTerm(c.Request.Context(), classSubjectID, termID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}

// ListByStudentAndClassSubject godoc
// @Summary List a student's grades in a class subject
// @Tags Grades
// @Produce json
// @Param studentId path int true "Student ID"
// @Param classSubjectId path int true "Class subject ID"
// @Success 200 {object} response.Envelope
// @Router /Grade/student/{studentId}/subject/{classSubjectId} [get]
func (h *GradeHandler) ListByStudentAndClassSubject(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	classSubjectID, ok := pathID(c, "classSubjectId")
	if !ok {
		return
	}
	grades, err := h.service.ListByStudentAndClassSubject(c.Request.Context(), studentID, classSubjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}

// Create godoc
// @Summary Create grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body dto.GradeRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /Grade [post]
func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.GradeRequest
	if !bindJSON(c, &req, "grade") {
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
// @Summary Replace grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Param payload body dto.GradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Grade/{id} [put]
func (h *GradeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.GradeRequest
	if !bindJSON(c, &req, "grade") {
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
// @Summary Delete grade
// @Tags Grades
// @Param id path int true "Grade ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /Grade/{id} [delete]
func (h *GradeHandler) Delete(c *gin.Context) {
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

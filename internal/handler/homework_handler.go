package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
	"github.com/noah-isme/school-services/pkg/response"
)

type homeworkService interface {
	List(ctx context.Context) ([]models.Homework, error)
	Get(ctx context.Context, id int64) (*models.Homework, error)
	ListByClassSubject(ctx context.Context, classSubjectID int64) ([]models.Homework, error)
	ListByClassSubjectAndTerm(ctx context.Context, classSubjectID, termID int64) ([]models.Homework, error)
	ListByClassSubjectInRange(ctx context.Context, classSubjectID int64, start, end models.Date) ([]models.Homework, error)
	ListInDate(ctx context.Context, classSubjectID int64) ([]models.Homework, error)
	ListInDateForClassSubjects(ctx context.Context, classSubjectIDs []int64) ([]models.Homework, error)
	ListInDateForClassSubjectsAndTerm(ctx context.Context, termID int64, classSubjectIDs []int64) ([]models.Homework, error)
	Create(ctx context.Context, req dto.HomeworkRequest) (*models.Homework, error)
	Update(ctx context.Context, id int64, req dto.HomeworkRequest) (*models.Homework, error)
	Delete(ctx context.Context, id int64) error
}

// HomeworkHandler exposes homework endpoints.
type HomeworkHandler struct {
	service homeworkService
}

// NewHomeworkHandler builds a homework handler.
func NewHomeworkHandler(service homeworkService) *HomeworkHandler {
	return &HomeworkHandler{service: service}
}

// List godoc
// @Summary List homework
// @Tags Homework
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /Homework [get]
func (h *HomeworkHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get homework
// @Tags Homework
// @Produce json
// @Param id path int true "Homework ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Homework/{id} [get]
func (h *HomeworkHandler) Get(c *gin.Context) {
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

// ListByClassSubject godoc
// @Summary List homework of a class subject
// @Tags Homework
// @Produce json
// @Param id path int true "Class subject ID"
// @Success 200 {object} response.Envelope
// @Router /Homework/classSubject/{id} [get]
func (h *HomeworkHandler) ListByClassSubject(c *gin.Context) {
	classSubjectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.service.ListByClassSubject(c.Request.Context(), classSubjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListByClassSubjectAndTerm godoc
// @Summary List homework of a class subject due inside a term
// @Tags Homework
// @Produce json
// @Param id path int true "Class subject ID"
// @Param termId path int true "Term ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Homework/classSubject/{id}/term/{termId} [get]
func (h *HomeworkHandler) ListByClassSubjectAndTerm(c *gin.Context) {
	classSubjectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	termID, ok := pathID(c, "termId")
	if !ok {
		return
	}
	items, err := h.service.ListByClassSubjectAndTerm(c.Request.Context(), classSubjectID, termID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListByClassSubjectInRange godoc
// @Summary List homework of a class subject due between two days
// @Tags Homework
// @Produce json
// @Param id path int true "Class subject ID"
// @Param startDay path string true "First day (yyyy-MM-dd)"
// @Param endDay path string true "Last day (yyyy-MM-dd)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /Homework/classSubject/{id}/startDay/{startDay}/endDay/{endDay} [get]
func (h *HomeworkHandler) ListByClassSubjectInRange(c *gin.Context) {
	classSubjectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	start, ok := pathDate(c, "startDay")
	if !ok {
		return
	}
	end, ok := pathDate(c, "endDay")
	if !ok {
		return
	}
	items, err := h.service.ListByClassSubjectInRange(c.Request.Context(), classSubjectID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListInDate godoc
// @Summary List homework of a class subject that is still in date
// @Description Due today or later; from 14:00 local time, due tomorrow or later.
// @Tags Homework
// @Produce json
// @Param id path int true "Class subject ID"
// @Success 200 {object} response.Envelope
// @Router /Homework/classSubject/{id}/indate [get]
func (h *HomeworkHandler) ListInDate(c *gin.Context) {
	classSubjectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.service.ListInDate(c.Request.Context(), classSubjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListInDateForClassSubjects godoc
// @Summary List in-date homework for several class subjects
// @Tags Homework
// @Accept json
// @Produce json
// @Param payload body []int true "Class subject IDs"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /Homework/classSubjects/indate [post]
func (h *HomeworkHandler) ListInDateForClassSubjects(c *gin.Context) {
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	items, err := h.service.ListInDateForClassSubjects(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// ListInDateForClassSubjectsAndTerm godoc
// @Summary List in-date homework for several class subjects up to the end of a term
// @Tags Homework
// @Accept json
// @Produce json
// @Param termId path int true "Term ID"
// @Param payload body []int true "Class subject IDs"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Homework/classSubjects/term/{termId}/indate [post]
func (h *HomeworkHandler) ListInDateForClassSubjectsAndTerm(c *gin.Context) {
	termID, ok := pathID(c, "termId")
	if !ok {
		return
	}
	ids, ok := bindIDs(c)
	if !ok {
		return
	}
	items, err := h.service.ListInDateForClassSubjectsAndTerm(c.Request.Context(), termID, ids)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create homework
// @Tags Homework
// @Accept json
// @Produce json
// @Param payload body dto.HomeworkRequest true "Homework payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /Homework [post]
func (h *HomeworkHandler) Create(c *gin.Context) {
	var req dto.HomeworkRequest
	if !bindJSON(c, &req, "homework") {
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
// @Summary Replace homework
// @Tags Homework
// @Accept json
// @Produce json
// @Param id path int true "Homework ID"
// @Param payload body dto.HomeworkRequest true "Homework payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /Homework/{id} [put]
func (h *HomeworkHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.HomeworkRequest
	if !bindJSON(c, &req, "homework") {
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
// @Summary Delete homework
// @Tags Homework
// @Param id path int true "Homework ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /Homework/{id} [delete]
func (h *HomeworkHandler) Delete(c *gin.Context) {
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

// bindIDs decodes a JSON array of ids. An empty array is valid.
func bindIDs(c *gin.Context) ([]int64, bool) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "body must be a JSON array of class subject ids"))
		return nil, false
	}
	return ids, true
}

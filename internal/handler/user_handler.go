package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/response"
)

type userService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]models.User, error)
	ListTeachers(ctx context.Context, schoolID int64) ([]models.User, error)
	ListStudents(ctx context.Context, schoolID int64) ([]models.User, error)
	Create(ctx context.Context, req dto.UserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req dto.UserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserHandler exposes user endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler builds a user handler.
func NewUserHandler(service userService) *UserHandler {
	return &UserHandler{service: service}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /User [get]
func (h *UserHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /User/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// ListBySchool godoc
// @Summary List the members of a school
// @Tags Users
// @Produce json
// @Param schoolId path int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /User/school/{schoolId} [get]
func (h *UserHandler) ListBySchool(c *gin.Context) {
	schoolID, ok := pathID(c, "schoolId")
	if !ok {
		return
	}
	users, err := h.service.ListBySchool(c.Request.Context(), schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// ListTeachers godoc
// @Summary List the teachers of a school
// @Tags Users
// @Produce json
// @Param schoolId path int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /User/school/{schoolId}/teachers [get]
func (h *UserHandler) ListTeachers(c *gin.Context) {
	schoolID, ok := pathID(c, "schoolId")
	if !ok {
		return
	}
	users, err := h.service.ListTeachers(c.Request.Context(), schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// ListStudents godoc
// @Summary List the students of a school
// @Tags Users
// @Produce json
// @Param schoolId path int true "School ID"
// @Success 200 {object} response.Envelope
// @Router /User/school/{schoolId}/students [get]
func (h *UserHandler) ListStudents(c *gin.Context) {
	schoolID, ok := pathID(c, "schoolId")
	if !ok {
		return
	}
	users, err := h.service.ListStudents(c.Request.Context(), schoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Create godoc
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.UserRequest true "User payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /User [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req, "user") {
		return
	}
	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resourceLocation(c, user.ID), user)
}

// Update godoc
// @Summary Replace user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param payload body dto.UserRequest true "User payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /User/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UserRequest
	if !bindJSON(c, &req, "user") {
		return
	}
	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /User/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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

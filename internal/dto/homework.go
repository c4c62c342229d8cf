package dto

import "github.com/noah-isme/school-services/internal/models"

// HomeworkRequest is the full-record payload for creating or replacing homework.
type HomeworkRequest struct {
	ID             int64       `json:"id"`
	ClassSubjectID int64       `json:"classSubjectId" validate:"required"`
	Description    string      `json:"description" validate:"required"`
	DueDate        models.Date `json:"dueDate"`
}

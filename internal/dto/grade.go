package dto

import "github.com/noah-isme/school-services/internal/models"

// GradeRequest is the full-record payload for creating or replacing a grade.
type GradeRequest struct {
	ID             int64       `json:"id"`
	StudentID      int64       `json:"studentId" validate:"required"`
	ClassSubjectID int64       `json:"classSubjectId" validate:"required"`
	GradeValue     string      `json:"gradeValue" validate:"required"`
	Date           models.Date `json:"date"`
}

// QuarterlyGradeRequest is the full-record payload for a quarterly grade.
type QuarterlyGradeRequest struct {
	ID         int64  `json:"id"`
	StudentID  int64  `json:"studentId" validate:"required"`
	SubjectID  int64  `json:"subjectId" validate:"required"`
	GradeValue string `json:"gradeValue" validate:"required"`
	TermID     int64  `json:"termId" validate:"required"`
}

// AssessmentTypeRequest is the full-record payload for an assessment type.
type AssessmentTypeRequest struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subjectId" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

// TermAssessmentRequest is the full-record payload for a term assessment.
type TermAssessmentRequest struct {
	ID               int64  `json:"id"`
	StudentID        int64  `json:"studentId" validate:"required"`
	SubjectID        int64  `json:"subjectId" validate:"required"`
	AssessmentTypeID int64  `json:"assessmentTypeId" validate:"required"`
	GradeValue       string `json:"gradeValue" validate:"required"`
	TermID           int64  `json:"termId" validate:"required"`
}

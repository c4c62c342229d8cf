package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type gradeRepository interface {
	List(ctx context.Context) ([]models.Grade, error)
	FindByID(ctx context.Context, id int64) (*models.Grade, error)
	ListByStudentInWindow(ctx context.Context, studentID int64, window models.Window) ([]models.Grade, error)
	ListByClassSubjectInWindow(ctx context.Context, classSubjectID int64, window models.Window) ([]models.Grade, error)
	ListByStudentAndClassSubject(ctx context.Context, studentID, classSubjectID int64) ([]models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// GradeService manages dated grades and their term-scoped queries.
type GradeService struct {
	repo      gradeRepository
	terms     TermResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs a grade service.
func NewGradeService(repo gradeRepository, terms TermResolver, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, terms: terms, validator: validate, logger: logger}
}

// List returns every grade.
func (s *GradeService) List(ctx context.Context) ([]models.Grade, error) {
	grades, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list grades")
	}
	return grades, nil
}

// Get returns a grade by id.
func (s *GradeService) Get(ctx context.Context, id int64) (*models.Grade, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "grade")
	}
	return grade, nil
}

// ListByStudentAndTerm returns the student's grades dated inside the term.
func (s *GradeService) ListByStudentAndTerm(ctx context.Context, studentID, termID int64) ([]models.Grade, error) {
	window, err := s.termWindow(ctx, termID)
	if err != nil {
		return nil, err
	}
	if window.Empty() {
		return []models.Grade{}, nil
	}
	grades, err := s.repo.ListByStudentInWindow(ctx, studentID, window)
	if err != nil {
		return nil, internalError(err, "failed to list student grades")
	}
	return grades, nil
}

// ListByClassSubjectAndTerm returns the class subject's grades dated inside the term.
func (s *GradeService) ListByClassSubjectAndTerm(ctx context.Context, classSubjectID, termID int64) ([]models.Grade, error) {
	window, err := s.termWindow(ctx, termID)
	if err != nil {
		return nil, err
	}
	if window.Empty() {
		return []models.Grade{}, nil
	}
	grades, err := s.repo.ListByClassSubjectInWindow(ctx, classSubjectID, window)
	if err != nil {
		return nil, internalError(err, "failed to list class subject grades")
	}
	return grades, nil
}

// ListByStudentAndClassSubject returns every grade of a student in a class subject.
func (s *GradeService) ListByStudentAndClassSubject(ctx context.Context, studentID, classSubjectID int64) ([]models.Grade, error) {
	grades, err := s.repo.ListByStudentAndClassSubject(ctx, studentID, classSubjectID)
	if err != nil {
		return nil, internalError(err, "failed to list student grades")
	}
	return grades, nil
}

// Create stores a new grade.
func (s *GradeService) Create(ctx context.Context, req dto.GradeRequest) (*models.Grade, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	grade := &models.Grade{
		StudentID:      req.StudentID,
		ClassSubjectID: req.ClassSubjectID,
		GradeValue:     req.GradeValue,
		Date:           req.Date,
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		return nil, writeError(err, "create", "grade")
	}
	return grade, nil
}

// Update replaces an existing grade.
func (s *GradeService) Update(ctx context.Context, id int64, req dto.GradeRequest) (*models.Grade, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "grade")
	}
	grade.StudentID = req.StudentID
	grade.ClassSubjectID = req.ClassSubjectID
	grade.GradeValue = req.GradeValue
	grade.Date = req.Date
	if err := s.repo.Update(ctx, grade); err != nil {
		return nil, writeError(err, "update", "grade")
	}
	return grade, nil
}

// Delete removes a grade.
func (s *GradeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "grade")
	}
	return nil
}

func (s *GradeService) validate(req dto.GradeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid grade payload")
	}
	if req.Date.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	return nil
}

func (s *GradeService) termWindow(ctx context.Context, termID int64) (models.Window, error) {
	term, err := s.terms.Resolve(ctx, termID)
	if err != nil {
		return models.Window{}, err
	}
	return term.Window(), nil
}

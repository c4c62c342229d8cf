package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
)

type quarterlyGradeRepository interface {
	List(ctx context.Context) ([]models.QuarterlyGrade, error)
	FindByID(ctx context.Context, id int64) (*models.QuarterlyGrade, error)
	ListByStudentAndTerm(ctx context.Context, studentID, termID int64) ([]models.QuarterlyGrade, error)
	Create(ctx context.Context, grade *models.QuarterlyGrade) error
	Update(ctx context.Context, grade *models.QuarterlyGrade) error
	Delete(ctx context.Context, id int64) error
}

// QuarterlyGradeService manages final term grades.
type QuarterlyGradeService struct {
	repo      quarterlyGradeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewQuarterlyGradeService constructs a quarterly grade service.
func NewQuarterlyGradeService(repo quarterlyGradeRepository, validate *validator.Validate, logger *zap.Logger) *QuarterlyGradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuarterlyGradeService{repo: repo, validator: validate, logger: logger}
}

func (s *QuarterlyGradeService) List(ctx context.Context) ([]models.QuarterlyGrade, error) {
	grades, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list quarterly grades")
	}
	return grades, nil
}

func (s *QuarterlyGradeService) Get(ctx context.Context, id int64) (*models.QuarterlyGrade, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "quarterly grade")
	}
	return grade, nil
}

// ListByStudentAndTerm filters on the stored term id; no window lookup is involved.
func (s *QuarterlyGradeService) ListByStudentAndTerm(ctx context.Context, studentID, termID int64) ([]models.QuarterlyGrade, error) {
	grades, err := s.repo.ListByStudentAndTerm(ctx, studentID, termID)
	if err != nil {
		return nil, internalError(err, "failed to list quarterly grades")
	}
	return grades, nil
}

func (s *QuarterlyGradeService) Create(ctx context.Context, req dto.QuarterlyGradeRequest) (*models.QuarterlyGrade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid quarterly grade payload")
	}
	grade := &models.QuarterlyGrade{
		StudentID:  req.StudentID,
		SubjectID:  req.SubjectID,
		GradeValue: req.GradeValue,
		TermID:     req.TermID,
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		return nil, writeError(err, "create", "quarterly grade")
	}
	return grade, nil
}

func (s *QuarterlyGradeService) Update(ctx context.Context, id int64, req dto.QuarterlyGradeRequest) (*models.QuarterlyGrade, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid quarterly grade payload")
	}
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "quarterly grade")
	}
	grade.StudentID = req.StudentID
	grade.SubjectID = req.SubjectID
	grade.GradeValue = req.GradeValue
	grade.TermID = req.TermID
	if err := s.repo.Update(ctx, grade); err != nil {
		return nil, writeError(err, "update", "quarterly grade")
	}
	return grade, nil
}

func (s *QuarterlyGradeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "quarterly grade")
	}
	return nil
}

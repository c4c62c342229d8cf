package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type assessmentTypeRepository interface {
	List(ctx context.Context) ([]models.AssessmentType, error)
	FindByID(ctx context.Context, id int64) (*models.AssessmentType, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, item *models.AssessmentType) error
	Update(ctx context.Context, item *models.AssessmentType) error
	Delete(ctx context.Context, id int64) error
}

type termAssessmentRepository interface {
	List(ctx context.Context) ([]models.TermAssessment, error)
	FindByID(ctx context.Context, id int64) (*models.TermAssessment, error)
	Create(ctx context.Context, item *models.TermAssessment) error
	Update(ctx context.Context, item *models.TermAssessment) error
	Delete(ctx context.Context, id int64) error
}

type assessmentTypeChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AssessmentTypeService manages assessment types.
type AssessmentTypeService struct {
	repo      assessmentTypeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssessmentTypeService constructs an assessment type service.
func NewAssessmentTypeService(repo assessmentTypeRepository, validate *validator.Validate, logger *zap.Logger) *AssessmentTypeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentTypeService{repo: repo, validator: validate, logger: logger}
}

func (s *AssessmentTypeService) List(ctx context.Context) ([]models.AssessmentType, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list assessment types")
	}
	return items, nil
}

func (s *AssessmentTypeService) Get(ctx context.Context, id int64) (*models.AssessmentType, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "assessment type")
	}
	return item, nil
}

func (s *AssessmentTypeService) Create(ctx context.Context, req dto.AssessmentTypeRequest) (*models.AssessmentType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid assessment type payload")
	}
	item := &models.AssessmentType{SubjectID: req.SubjectID, Name: req.Name}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, writeError(err, "create", "assessment type")
	}
	return item, nil
}

func (s *AssessmentTypeService) Update(ctx context.Context, id int64, req dto.AssessmentTypeRequest) (*models.AssessmentType, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid assessment type payload")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "assessment type")
	}
	item.SubjectID = req.SubjectID
	item.Name = req.Name
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, writeError(err, "update", "assessment type")
	}
	return item, nil
}

// Delete removes the type together with its term assessments.
func (s *AssessmentTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "assessment type")
	}
	s.logger.Info("assessment type deleted", zap.Int64("assessment_type_id", id))
	return nil
}

// TermAssessmentService manages per-assessment term marks.
type TermAssessmentService struct {
	repo      termAssessmentRepository
	types     assessmentTypeChecker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTermAssessmentService constructs a term assessment service.
func NewTermAssessmentService(repo termAssessmentRepository, types assessmentTypeChecker, validate *validator.Validate, logger *zap.Logger) *TermAssessmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermAssessmentService{repo: repo, types: types, validator: validate, logger: logger}
}

func (s *TermAssessmentService) List(ctx context.Context) ([]models.TermAssessment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list term assessments")
	}
	return items, nil
}

func (s *TermAssessmentService) Get(ctx context.Context, id int64) (*models.TermAssessment, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "term assessment")
	}
	return item, nil
}

// Create stores a term assessment once its assessment type is known to exist.
func (s *TermAssessmentService) Create(ctx context.Context, req dto.TermAssessmentRequest) (*models.TermAssessment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid term assessment payload")
	}
	if err := s.ensureAssessmentType(ctx, req.AssessmentTypeID); err != nil {
		return nil, err
	}
	item := &models.TermAssessment{
		StudentID:        req.StudentID,
		SubjectID:        req.SubjectID,
		AssessmentTypeID: req.AssessmentTypeID,
		GradeValue:       req.GradeValue,
		TermID:           req.TermID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, writeError(err, "create", "term assessment")
	}
	return item, nil
}

// Update replaces a term assessment. The assessment type is re-checked only
// when it changes.
func (s *TermAssessmentService) Update(ctx context.Context, id int64, req dto.TermAssessmentRequest) (*models.TermAssessment, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid term assessment payload")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "term assessment")
	}
	if item.AssessmentTypeID != req.AssessmentTypeID {
		if err := s.ensureAssessmentType(ctx, req.AssessmentTypeID); err != nil {
			return nil, err
		}
	}
	item.StudentID = req.StudentID
	item.SubjectID = req.SubjectID
	item.AssessmentTypeID = req.AssessmentTypeID
	item.GradeValue = req.GradeValue
	item.TermID = req.TermID
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, writeError(err, "update", "term assessment")
	}
	return item, nil
}

func (s *TermAssessmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "term assessment")
	}
	return nil
}

func (s *TermAssessmentService) ensureAssessmentType(ctx context.Context, id int64) error {
	exists, err := s.types.Exists(ctx, id)
	if err != nil {
		return internalError(err, "failed to check assessment type")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "AssessmentType not found")
	}
	return nil
}

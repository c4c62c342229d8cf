package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type parentRepository interface {
	List(ctx context.Context) ([]models.Parent, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]models.Parent, error)
	FindByID(ctx context.Context, id int64) (*models.Parent, error)
	Create(ctx context.Context, parent *models.Parent) error
	Update(ctx context.Context, parent *models.Parent) error
	Delete(ctx context.Context, id int64) error
}

type studentLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// ParentService manages student guardians.
type ParentService struct {
	repo      parentRepository
	schools   schoolChecker
	students  studentLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewParentService constructs a parent service.
func NewParentService(repo parentRepository, schools schoolChecker, students studentLookup, validate *validator.Validate, logger *zap.Logger) *ParentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParentService{repo: repo, schools: schools, students: students, validator: validate, logger: logger}
}

func (s *ParentService) List(ctx context.Context) ([]models.Parent, error) {
	parents, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list parents")
	}
	return parents, nil
}

func (s *ParentService) ListBySchool(ctx context.Context, schoolID int64) ([]models.Parent, error) {
	parents, err := s.repo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, internalError(err, "failed to list parents")
	}
	return parents, nil
}

func (s *ParentService) Get(ctx context.Context, id int64) (*models.Parent, error) {
	parent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "parent")
	}
	return parent, nil
}

// Student returns the student user a parent is attached to.
func (s *ParentService) Student(ctx context.Context, parentID int64) (*models.User, error) {
	parent, err := s.repo.FindByID(ctx, parentID)
	if err != nil {
		return nil, loadError(err, "parent")
	}
	student, err := s.students.FindByID(ctx, parent.StudentID)
	if err != nil {
		return nil, loadError(err, "student")
	}
	return student, nil
}

// Create stores a parent after its school and student are found.
func (s *ParentService) Create(ctx context.Context, req dto.ParentRequest) (*models.Parent, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := ensureSchool(ctx, s.schools, req.SchoolID); err != nil {
		return nil, err
	}
	if err := s.ensureStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}
	parent := &models.Parent{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		SchoolID:  req.SchoolID,
		StudentID: req.StudentID,
	}
	if err := s.repo.Create(ctx, parent); err != nil {
		return nil, writeError(err, "create", "parent")
	}
	return parent, nil
}

// Update replaces a parent. School and student are re-checked only when
// they change.
func (s *ParentService) Update(ctx context.Context, id int64, req dto.ParentRequest) (*models.Parent, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	parent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "parent")
	}
	if parent.SchoolID != req.SchoolID {
		if err := ensureSchool(ctx, s.schools, req.SchoolID); err != nil {
			return nil, err
		}
	}
	if parent.StudentID != req.StudentID {
		if err := s.ensureStudent(ctx, req.StudentID); err != nil {
			return nil, err
		}
	}
	parent.Name = strings.TrimSpace(req.Name)
	parent.Email = strings.TrimSpace(req.Email)
	parent.SchoolID = req.SchoolID
	parent.StudentID = req.StudentID
	if err := s.repo.Update(ctx, parent); err != nil {
		return nil, writeError(err, "update", "parent")
	}
	return parent, nil
}

func (s *ParentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "parent")
	}
	return nil
}

func (s *ParentService) validate(req dto.ParentRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Name and Email are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid parent payload")
	}
	return nil
}

func (s *ParentService) ensureStudent(ctx context.Context, studentID int64) error {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return internalError(err, "failed to check student")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Student not found")
	}
	return nil
}

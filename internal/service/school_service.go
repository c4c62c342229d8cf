package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
)

type schoolRepository interface {
	List(ctx context.Context) ([]models.School, error)
	FindByID(ctx context.Context, id int64) (*models.School, error)
	Create(ctx context.Context, school *models.School) error
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id int64) error
}

// SchoolService manages schools.
type SchoolService struct {
	repo      schoolRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSchoolService constructs a school service.
func NewSchoolService(repo schoolRepository, validate *validator.Validate, logger *zap.Logger) *SchoolService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchoolService{repo: repo, validator: validate, logger: logger}
}

func (s *SchoolService) List(ctx context.Context) ([]models.School, error) {
	schools, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list schools")
	}
	return schools, nil
}

func (s *SchoolService) Get(ctx context.Context, id int64) (*models.School, error) {
	school, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "school")
	}
	return school, nil
}

func (s *SchoolService) Create(ctx context.Context, req dto.SchoolRequest) (*models.School, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid school payload")
	}
	school := &models.School{Name: strings.TrimSpace(req.Name), Address: strings.TrimSpace(req.Address)}
	if err := s.repo.Create(ctx, school); err != nil {
		return nil, writeError(err, "create", "school")
	}
	return school, nil
}

func (s *SchoolService) Update(ctx context.Context, id int64, req dto.SchoolRequest) (*models.School, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid school payload")
	}
	school, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "school")
	}
	school.Name = strings.TrimSpace(req.Name)
	school.Address = strings.TrimSpace(req.Address)
	if err := s.repo.Update(ctx, school); err != nil {
		return nil, writeError(err, "update", "school")
	}
	return school, nil
}

func (s *SchoolService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "school")
	}
	return nil
}

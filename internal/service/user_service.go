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

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]models.User, error)
	ListBySchoolAndRole(ctx context.Context, schoolID int64, role models.UserRole) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

type schoolChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// UserService manages school members other than parents.
type UserService struct {
	repo      userRepository
	schools   schoolChecker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a user service.
func NewUserService(repo userRepository, schools schoolChecker, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, schools: schools, validator: validate, logger: logger}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list users")
	}
	return users, nil
}

// ListBySchool returns every member of a school.
func (s *UserService) ListBySchool(ctx context.Context, schoolID int64) ([]models.User, error) {
	users, err := s.repo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, internalError(err, "failed to list users")
	}
	return users, nil
}

// ListTeachers returns the teachers of a school.
func (s *UserService) ListTeachers(ctx context.Context, schoolID int64) ([]models.User, error) {
	return s.listByRole(ctx, schoolID, models.RoleTeacher)
}

// ListStudents returns the students of a school.
func (s *UserService) ListStudents(ctx context.Context, schoolID int64) ([]models.User, error) {
	return s.listByRole(ctx, schoolID, models.RoleStudent)
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "user")
	}
	return user, nil
}

// Create validates the payload, checks the school and stores the user.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	role, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if err := ensureSchool(ctx, s.schools, req.SchoolID); err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Role:     role,
		SchoolID: req.SchoolID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, writeError(err, "create", "user")
	}
	return user, nil
}

// Update replaces a user. The school is re-checked only when it changes.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UserRequest) (*models.User, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	role, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "user")
	}
	if user.SchoolID != req.SchoolID {
		if err := ensureSchool(ctx, s.schools, req.SchoolID); err != nil {
			return nil, err
		}
	}
	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.TrimSpace(req.Email)
	user.Role = role
	user.SchoolID = req.SchoolID
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, writeError(err, "update", "user")
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "user")
	}
	return nil
}

func (s *UserService) listByRole(ctx context.Context, schoolID int64, role models.UserRole) ([]models.User, error) {
	users, err := s.repo.ListBySchoolAndRole(ctx, schoolID, role)
	if err != nil {
		return nil, internalError(err, "failed to list users")
	}
	return users, nil
}

func (s *UserService) validate(req dto.UserRequest) (models.UserRole, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Role) == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Name, Email and Role are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return "", validationError(err, "invalid user payload")
	}
	role := models.UserRole(strings.TrimSpace(req.Role))
	if !role.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, "Role must be one of Student, Teacher, Director")
	}
	if role == models.RoleParent {
		return "", appErrors.Clone(appErrors.ErrValidation, "Use parent endpoint: /api/v1/Parent")
	}
	return role, nil
}

func ensureSchool(ctx context.Context, schools schoolChecker, schoolID int64) error {
	exists, err := schools.Exists(ctx, schoolID)
	if err != nil {
		return internalError(err, "failed to check school")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "School not found")
	}
	return nil
}

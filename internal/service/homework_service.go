package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type homeworkRepository interface {
	List(ctx context.Context) ([]models.Homework, error)
	FindByID(ctx context.Context, id int64) (*models.Homework, error)
	ListByClassSubject(ctx context.Context, classSubjectID int64) ([]models.Homework, error)
	ListByClassSubjectInWindow(ctx context.Context, classSubjectID int64, window models.Window) ([]models.Homework, error)
	ListByClassSubjectDueFrom(ctx context.Context, classSubjectID int64, from models.Date) ([]models.Homework, error)
	ListByClassSubjectsDueFrom(ctx context.Context, classSubjectIDs []int64, from models.Date) ([]models.Homework, error)
	ListByClassSubjectsInWindow(ctx context.Context, classSubjectIDs []int64, window models.Window) ([]models.Homework, error)
	Create(ctx context.Context, item *models.Homework) error
	Update(ctx context.Context, item *models.Homework) error
	Delete(ctx context.Context, id int64) error
}

// HomeworkService manages homework and its due-date queries.
type HomeworkService struct {
	repo      homeworkRepository
	terms     TermResolver
	now       Clock
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHomeworkService constructs a homework service. A nil clock reads the
// system time in the host location.
func NewHomeworkService(repo homeworkRepository, terms TermResolver, clock Clock, validate *validator.Validate, logger *zap.Logger) *HomeworkService {
	if clock == nil {
		clock = time.Now
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeworkService{repo: repo, terms: terms, now: clock, validator: validate, logger: logger}
}

// List returns every homework.
func (s *HomeworkService) List(ctx context.Context) ([]models.Homework, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list homework")
	}
	return items, nil
}

// Get returns a homework by id.
func (s *HomeworkService) Get(ctx context.Context, id int64) (*models.Homework, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "homework")
	}
	return item, nil
}

// ListByClassSubject returns all homework of a class subject.
func (s *HomeworkService) ListByClassSubject(ctx context.Context, classSubjectID int64) ([]models.Homework, error) {
	items, err := s.repo.ListByClassSubject(ctx, classSubjectID)
	if err != nil {
		return nil, internalError(err, "failed to list homework")
	}
	return items, nil
}

// ListByClassSubjectAndTerm returns homework of a class subject due inside the term.
func (s *HomeworkService) ListByClassSubjectAndTerm(ctx context.Context, classSubjectID, termID int64) ([]models.Homework, error) {
	term, err := s.terms.Resolve(ctx, termID)
	if err != nil {
		return nil, err
	}
	return s.listInWindow(ctx, classSubjectID, term.Window())
}

// ListByClassSubjectInRange returns homework due between start and end,
// both inclusive. An inverted range yields an empty list.
func (s *HomeworkService) ListByClassSubjectInRange(ctx context.Context, classSubjectID int64, start, end models.Date) ([]models.Homework, error) {
	return s.listInWindow(ctx, classSubjectID, models.Window{Start: start, End: end})
}

// ListInDate returns homework of a class subject due on or after the cutoff date.
func (s *HomeworkService) ListInDate(ctx context.Context, classSubjectID int64) ([]models.Homework, error) {
	items, err := s.repo.ListByClassSubjectDueFrom(ctx, classSubjectID, s.cutoff())
	if err != nil {
		return nil, internalError(err, "failed to list homework")
	}
	return items, nil
}

// ListInDateForClassSubjects returns in-date homework of any listed class subject.
func (s *HomeworkService) ListInDateForClassSubjects(ctx context.Context, classSubjectIDs []int64) ([]models.Homework, error) {
	if len(classSubjectIDs) == 0 {
		return []models.Homework{}, nil
	}
	items, err := s.repo.ListByClassSubjectsDueFrom(ctx, classSubjectIDs, s.cutoff())
	if err != nil {
		return nil, internalError(err, "failed to list homework")
	}
	return items, nil
}

// ListInDateForClassSubjectsAndTerm returns homework of any listed class
// subject due between the cutoff date and the end of the term.
func (s *HomeworkService) ListInDateForClassSubjectsAndTerm(ctx context.Context, termID int64, classSubjectIDs []int64) ([]models.Homework, error) {
	term, err := s.terms.Resolve(ctx, termID)
	if err != nil {
		return nil, err
	}
	window := models.Window{Start: s.cutoff(), End: term.EndDate}
	if len(classSubjectIDs) == 0 || window.Empty() {
		return []models.Homework{}, nil
	}
	items, err := s.repo.ListByClassSubjectsInWindow(ctx, classSubjectIDs, window)
	if err != nil {
		return nil, internalError(err, "failed to list homework")
	}
	return items, nil
}

// Create stores a new homework.
func (s *HomeworkService) Create(ctx context.Context, req dto.HomeworkRequest) (*models.Homework, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	item := &models.Homework{
		ClassSubjectID: req.ClassSubjectID,
		Description:    req.Description,
		DueDate:        req.DueDate,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, writeError(err, "create", "homework")
	}
	return item, nil
}

// Update replaces an existing homework.
func (s *HomeworkService) Update(ctx context.Context, id int64, req dto.HomeworkRequest) (*models.Homework, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "homework")
	}
	item.ClassSubjectID = req.ClassSubjectID
	item.Description = req.Description
	item.DueDate = req.DueDate
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, writeError(err, "update", "homework")
	}
	return item, nil
}

// Delete removes a homework.
func (s *HomeworkService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "homework")
	}
	return nil
}

func (s *HomeworkService) listInWindow(ctx context.Context, classSubjectID int64, window models.Window) ([]models.Homework, error) {
	if window.Empty() {
		return []models.Homework{}, nil
	}
	items, err := s.repo.ListByClassSubjectInWindow(ctx, classSubjectID, window)
	if err != nil {
		return nil, internalError(err, "failed to list homework")
	}
	return items, nil
}

func (s *HomeworkService) cutoff() models.Date {
	return CutoffDate(s.now())
}

func (s *HomeworkService) validate(req dto.HomeworkRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid homework payload")
	}
	if req.DueDate.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "dueDate is required")
	}
	return nil
}

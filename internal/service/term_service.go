package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type termRepository interface {
	List(ctx context.Context) ([]models.Term, error)
	ListBySchool(ctx context.Context, schoolID int64) ([]models.Term, error)
	FindByID(ctx context.Context, id int64) (*models.Term, error)
	Create(ctx context.Context, term *models.Term) error
	Update(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, id int64) error
}

// TermService orchestrates term workflows.
type TermService struct {
	repo   termRepository
	logger *zap.Logger
}

// NewTermService creates a new term service instance.
func NewTermService(repo termRepository, logger *zap.Logger) *TermService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermService{repo: repo, logger: logger}
}

// List returns every term.
func (s *TermService) List(ctx context.Context) ([]models.Term, error) {
	terms, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list terms")
	}
	return terms, nil
}

// ListBySchool returns the terms of a school.
func (s *TermService) ListBySchool(ctx context.Context, schoolID int64) ([]models.Term, error) {
	terms, err := s.repo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, internalError(err, "failed to list terms")
	}
	return terms, nil
}

// Get returns a term by ID.
func (s *TermService) Get(ctx context.Context, id int64) (*models.Term, error) {
	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "term")
	}
	return term, nil
}

// Create adds a new term after date validation.
func (s *TermService) Create(ctx context.Context, req dto.TermRequest) (*models.Term, error) {
	term, err := termFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, term); err != nil {
		return nil, writeError(err, "create", "term")
	}
	return term, nil
}

// Update replaces a term record.
func (s *TermService) Update(ctx context.Context, id int64, req dto.TermRequest) (*models.Term, error) {
	if err := checkIDMatch(id, req.ID); err != nil {
		return nil, err
	}
	term, err := termFromRequest(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, loadError(err, "term")
	}
	term.ID = id
	if err := s.repo.Update(ctx, term); err != nil {
		return nil, writeError(err, "update", "term")
	}
	return term, nil
}

// Delete removes a term.
func (s *TermService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "term")
	}
	return nil
}

// termFromRequest checks presence, then date format, then ordering.
func termFromRequest(req dto.TermRequest) (*models.Term, error) {
	name := strings.TrimSpace(req.Name)
	rawStart := strings.TrimSpace(req.StartDate)
	rawEnd := strings.TrimSpace(req.EndDate)
	if name == "" || rawStart == "" || rawEnd == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Name, StartDate and EndDate are required")
	}

	start, err := models.ParseDate(rawStart)
	if err != nil {
		return nil, validationError(err, "Invalid StartDate or EndDate format. Use yyyy-MM-dd")
	}
	end, err := models.ParseDate(rawEnd)
	if err != nil {
		return nil, validationError(err, "Invalid StartDate or EndDate format. Use yyyy-MM-dd")
	}
	if !start.Before(end) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "StartDate must be before EndDate")
	}

	return &models.Term{
		SchoolID:  req.SchoolID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
	}, nil
}

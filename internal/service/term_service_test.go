package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

type termRepoStub struct {
	terms  map[int64]*models.Term
	nextID int64
	writes int
	err    error
}

func newTermRepoStub() *termRepoStub {
	return &termRepoStub{terms: map[int64]*models.Term{}}
}

func (s *termRepoStub) List(ctx context.Context) ([]models.Term, error) {
	result := make([]models.Term, 0, len(s.terms))
	for id := int64(1); id <= s.nextID; id++ {
		if term, ok := s.terms[id]; ok {
			result = append(result, *term)
		}
	}
	return result, nil
}

func (s *termRepoStub) ListBySchool(ctx context.Context, schoolID int64) ([]models.Term, error) {
	all, _ := s.List(ctx)
	result := make([]models.Term, 0)
	for _, term := range all {
		if term.SchoolID == schoolID {
			result = append(result, term)
		}
	}
	return result, nil
}

func (s *termRepoStub) FindByID(ctx context.Context, id int64) (*models.Term, error) {
	if s.err != nil {
		return nil, s.err
	}
	if term, ok := s.terms[id]; ok {
		found := *term
		return &found, nil
	}
	return nil, sql.ErrNoRows
}

func (s *termRepoStub) Create(ctx context.Context, term *models.Term) error {
	s.writes++
	s.nextID++
	term.ID = s.nextID
	stored := *term
	s.terms[term.ID] = &stored
	return nil
}

func (s *termRepoStub) Update(ctx context.Context, term *models.Term) error {
	s.writes++
	stored := *term
	s.terms[term.ID] = &stored
	return nil
}

func (s *termRepoStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.terms[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.terms, id)
	return nil
}

func requireMessage(t *testing.T, err error, code, message string) {
	t.Helper()
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestTermServiceCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		req     dto.TermRequest
		message string
	}{
		{"missing name", dto.TermRequest{StartDate: "2024-01-08", EndDate: "2024-03-29"}, "Name, StartDate and EndDate are required"},
		{"missing end", dto.TermRequest{Name: "Q3", StartDate: "2024-01-08"}, "Name, StartDate and EndDate are required"},
		{"missing fields win over bad format", dto.TermRequest{Name: " ", StartDate: "08/01/2024", EndDate: "2024-03-29"}, "Name, StartDate and EndDate are required"},
		{"bad start format", dto.TermRequest{Name: "Q3", StartDate: "08/01/2024", EndDate: "2024-03-29"}, "Invalid StartDate or EndDate format. Use yyyy-MM-dd"},
		{"bad end format wins over ordering", dto.TermRequest{Name: "Q3", StartDate: "2024-03-29", EndDate: "2024-02-30"}, "Invalid StartDate or EndDate format. Use yyyy-MM-dd"},
		{"start equals end", dto.TermRequest{Name: "Q3", StartDate: "2024-03-29", EndDate: "2024-03-29"}, "StartDate must be before EndDate"},
		{"start after end", dto.TermRequest{Name: "Q3", StartDate: "2024-03-30", EndDate: "2024-03-29"}, "StartDate must be before EndDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTermRepoStub()
			svc := NewTermService(repo, nil)

			_, err := svc.Create(context.Background(), tc.req)
			requireMessage(t, err, appErrors.ErrValidation.Code, tc.message)
			assert.Zero(t, repo.writes)
		})
	}
}

func TestTermServiceCreateOneDayTerm(t *testing.T) {
	repo := newTermRepoStub()
	svc := NewTermService(repo, nil)

	created, err := svc.Create(context.Background(), dto.TermRequest{SchoolID: 2, Name: "Exam day", StartDate: "2024-03-28", EndDate: "2024-03-29"})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Term{
		ID:        created.ID,
		SchoolID:  2,
		Name:      "Exam day",
		StartDate: models.NewDate(2024, time.March, 28),
		EndDate:   models.NewDate(2024, time.March, 29),
	}, *fetched)
}

func TestTermServiceUpdate(t *testing.T) {
	repo := newTermRepoStub()
	svc := NewTermService(repo, nil)
	created, err := svc.Create(context.Background(), dto.TermRequest{SchoolID: 2, Name: "Q1", StartDate: "2024-09-02", EndDate: "2024-10-27"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, dto.TermRequest{ID: created.ID + 1, Name: "Q1", StartDate: "2024-09-02", EndDate: "2024-10-27"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Update(context.Background(), created.ID, dto.TermRequest{Name: "Q1", StartDate: "2024-10-27", EndDate: "2024-09-02"})
	requireMessage(t, err, appErrors.ErrValidation.Code, "StartDate must be before EndDate")

	_, err = svc.Update(context.Background(), 42, dto.TermRequest{Name: "Q1", StartDate: "2024-09-02", EndDate: "2024-10-27"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	updated, err := svc.Update(context.Background(), created.ID, dto.TermRequest{ID: created.ID, SchoolID: 2, Name: "Quarter 1", StartDate: "2024-09-02", EndDate: "2024-11-01"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.NewDate(2024, time.November, 1), repo.terms[created.ID].EndDate)
}

func TestTermServiceListBySchoolAndDelete(t *testing.T) {
	repo := newTermRepoStub()
	svc := NewTermService(repo, nil)
	for _, req := range []dto.TermRequest{
		{SchoolID: 1, Name: "Q1", StartDate: "2024-09-02", EndDate: "2024-10-27"},
		{SchoolID: 2, Name: "Q1", StartDate: "2024-09-02", EndDate: "2024-10-27"},
		{SchoolID: 1, Name: "Q2", StartDate: "2024-11-04", EndDate: "2024-12-22"},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	terms, err := svc.ListBySchool(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "Q2", terms[1].Name)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), appErrors.ErrNotFound)
}

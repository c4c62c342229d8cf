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

type homeworkRepoStub struct {
	items   []models.Homework
	queries int
	created []models.Homework
}

func (s *homeworkRepoStub) List(ctx context.Context) ([]models.Homework, error) {
	s.queries++
	return s.filter(func(models.Homework) bool { return true }), nil
}

func (s *homeworkRepoStub) FindByID(ctx context.Context, id int64) (*models.Homework, error) {
	for _, item := range s.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *homeworkRepoStub) ListByClassSubject(ctx context.Context, classSubjectID int64) ([]models.Homework, error) {
	s.queries++
	return s.filter(func(h models.Homework) bool { return h.ClassSubjectID == classSubjectID }), nil
}

func (s *homeworkRepoStub) ListByClassSubjectInWindow(ctx context.Context, classSubjectID int64, window models.Window) ([]models.Homework, error) {
	s.queries++
	return s.filter(func(h models.Homework) bool { return h.ClassSubjectID == classSubjectID && window.Contains(h.DueDate) }), nil
}

func (s *homeworkRepoStub) ListByClassSubjectDueFrom(ctx context.Context, classSubjectID int64, from models.Date) ([]models.Homework, error) {
	s.queries++
	return s.filter(func(h models.Homework) bool { return h.ClassSubjectID == classSubjectID && !h.DueDate.Before(from) }), nil
}

func (s *homeworkRepoStub) ListByClassSubjectsDueFrom(ctx context.Context, classSubjectIDs []int64, from models.Date) ([]models.Homework, error) {
	s.queries++
	return s.filter(func(h models.Homework) bool { return containsID(classSubjectIDs, h.ClassSubjectID) && !h.DueDate.Before(from) }), nil
}

func (s *homeworkRepoStub) ListByClassSubjectsInWindow(ctx context.Context, classSubjectIDs []int64, window models.Window) ([]models.Homework, error) {
	s.queries++
	return s.filter(func(h models.Homework) bool { return containsID(classSubjectIDs, h.ClassSubjectID) && window.Contains(h.DueDate) }), nil
}

func (s *homeworkRepoStub) Create(ctx context.Context, item *models.Homework) error {
	item.ID = int64(len(s.items) + 1)
	s.items = append(s.items, *item)
	s.created = append(s.created, *item)
	return nil
}

func (s *homeworkRepoStub) Update(ctx context.Context, item *models.Homework) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *homeworkRepoStub) Delete(ctx context.Context, id int64) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *homeworkRepoStub) filter(keep func(models.Homework) bool) []models.Homework {
	result := make([]models.Homework, 0)
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func fixedClock(hour, minute, sec int) Clock {
	return func() time.Time {
		return time.Date(2024, time.March, 15, hour, minute, sec, 0, time.UTC)
	}
}

func homeworkIDs(items []models.Homework) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func cutoffFixture() *homeworkRepoStub {
	return &homeworkRepoStub{items: []models.Homework{
		{ID: 1, ClassSubjectID: 4, Description: "yesterday", DueDate: models.NewDate(2024, time.March, 14)},
		{ID: 2, ClassSubjectID: 4, Description: "today", DueDate: models.NewDate(2024, time.March, 15)},
		{ID: 3, ClassSubjectID: 4, Description: "tomorrow", DueDate: models.NewDate(2024, time.March, 16)},
		{ID: 4, ClassSubjectID: 5, Description: "other class today", DueDate: models.NewDate(2024, time.March, 15)},
		{ID: 5, ClassSubjectID: 6, Description: "after term", DueDate: models.NewDate(2024, time.April, 2)},
	}}
}

func TestHomeworkServiceListInDateCutoff(t *testing.T) {
	cases := []struct {
		name  string
		clock Clock
		want  []int64
	}{
		{"before cutoff includes today", fixedClock(13, 59, 59), []int64{2, 3}},
		{"at cutoff starts tomorrow", fixedClock(14, 0, 0), []int64{3}},
		{"after cutoff starts tomorrow", fixedClock(14, 0, 1), []int64{3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewHomeworkService(cutoffFixture(), &termResolverStub{}, tc.clock, nil, nil)
			items, err := svc.ListInDate(context.Background(), 4)
			require.NoError(t, err)
			assert.Equal(t, tc.want, homeworkIDs(items))
		})
	}
}

func TestHomeworkServiceListInDateForClassSubjects(t *testing.T) {
	svc := NewHomeworkService(cutoffFixture(), &termResolverStub{}, fixedClock(9, 0, 0), nil, nil)

	items, err := svc.ListInDateForClassSubjects(context.Background(), []int64{4, 5, 4})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, homeworkIDs(items))
}

func TestHomeworkServiceEmptyIDListReturnsEmpty(t *testing.T) {
	repo := cutoffFixture()
	term := &models.Term{ID: 7, StartDate: models.NewDate(2024, time.January, 8), EndDate: models.NewDate(2024, time.March, 29)}
	svc := NewHomeworkService(repo, &termResolverStub{terms: map[int64]*models.Term{7: term}}, fixedClock(9, 0, 0), nil, nil)

	items, err := svc.ListInDateForClassSubjects(context.Background(), []int64{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = svc.ListInDateForClassSubjectsAndTerm(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, repo.queries)
}

func TestHomeworkServiceInDateForClassSubjectsAndTerm(t *testing.T) {
	repo := cutoffFixture()
	term := &models.Term{ID: 7, StartDate: models.NewDate(2024, time.January, 8), EndDate: models.NewDate(2024, time.March, 29)}
	resolver := &termResolverStub{terms: map[int64]*models.Term{7: term}}
	svc := NewHomeworkService(repo, resolver, fixedClock(14, 30, 0), nil, nil)

	items, err := svc.ListInDateForClassSubjectsAndTerm(context.Background(), 7, []int64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, homeworkIDs(items))

	_, err = svc.ListInDateForClassSubjectsAndTerm(context.Background(), 8, []int64{4})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Equal(t, 1, repo.queries)
}

func TestHomeworkServiceInDateAfterTermEndIsEmpty(t *testing.T) {
	repo := cutoffFixture()
	term := &models.Term{ID: 7, StartDate: models.NewDate(2024, time.January, 8), EndDate: models.NewDate(2024, time.March, 15)}
	svc := NewHomeworkService(repo, &termResolverStub{terms: map[int64]*models.Term{7: term}}, fixedClock(16, 0, 0), nil, nil)

	items, err := svc.ListInDateForClassSubjectsAndTerm(context.Background(), 7, []int64{4})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, repo.queries)
}

func TestHomeworkServiceListByClassSubjectAndTerm(t *testing.T) {
	repo := cutoffFixture()
	term := &models.Term{ID: 7, StartDate: models.NewDate(2024, time.March, 14), EndDate: models.NewDate(2024, time.March, 15)}
	svc := NewHomeworkService(repo, &termResolverStub{terms: map[int64]*models.Term{7: term}}, nil, nil, nil)

	items, err := svc.ListByClassSubjectAndTerm(context.Background(), 4, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, homeworkIDs(items))

	_, err = svc.ListByClassSubjectAndTerm(context.Background(), 4, 8)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Equal(t, 1, repo.queries)
}

func TestHomeworkServiceListByClassSubjectInRange(t *testing.T) {
	repo := cutoffFixture()
	svc := NewHomeworkService(repo, &termResolverStub{}, nil, nil, nil)

	items, err := svc.ListByClassSubjectInRange(context.Background(), 4, models.NewDate(2024, time.March, 15), models.NewDate(2024, time.March, 16))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, homeworkIDs(items))

	items, err = svc.ListByClassSubjectInRange(context.Background(), 4, models.NewDate(2024, time.March, 16), models.NewDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, repo.queries)
}

func TestHomeworkServiceCreateAndUpdate(t *testing.T) {
	repo := &homeworkRepoStub{}
	svc := NewHomeworkService(repo, &termResolverStub{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.HomeworkRequest{ClassSubjectID: 4, Description: "Essay"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Empty(t, repo.created)

	created, err := svc.Create(context.Background(), dto.HomeworkRequest{ClassSubjectID: 4, Description: "Essay", DueDate: models.NewDate(2024, time.April, 1)})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)

	updated, err := svc.Update(context.Background(), created.ID, dto.HomeworkRequest{ID: created.ID, ClassSubjectID: 4, Description: "Essay draft", DueDate: models.NewDate(2024, time.April, 3)})
	require.NoError(t, err)
	assert.Equal(t, "Essay draft", updated.Description)

	_, err = svc.Update(context.Background(), created.ID, dto.HomeworkRequest{ID: created.ID + 1, ClassSubjectID: 4, Description: "x", DueDate: models.NewDate(2024, time.April, 3)})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/models"
)

var homeworkRowColumns = []string{"id", "class_subject_id", "description", "due_date"}

func TestHomeworkRepositoryListByClassSubjectsDueFrom(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	from := models.NewDate(2024, time.April, 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM homeworks WHERE class_subject_id = ANY($1) AND due_date >= $2")).
		WithArgs("{4,7,4}", from.Time).
		WillReturnRows(sqlmock.NewRows(homeworkRowColumns).
			AddRow(int64(1), int64(4), "Essay", time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)).
			AddRow(int64(2), int64(7), "Worksheet", time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC)))

	items, err := NewHomeworkRepository(db).ListByClassSubjectsDueFrom(context.Background(), []int64{4, 7, 4}, from)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Worksheet", items[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkRepositoryListByClassSubjectsInWindow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	window := models.Window{Start: models.NewDate(2024, time.April, 2), End: models.NewDate(2024, time.June, 28)}
	mock.ExpectQuery(regexp.QuoteMeta("FROM homeworks WHERE class_subject_id = ANY($1) AND due_date >= $2 AND due_date <= $3")).
		WithArgs("{4}", window.Start.Time, window.End.Time).
		WillReturnRows(sqlmock.NewRows(homeworkRowColumns))

	items, err := NewHomeworkRepository(db).ListByClassSubjectsInWindow(context.Background(), []int64{4}, window)
	require.NoError(t, err)
	require.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkRepositoryDueFromAndWindow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewHomeworkRepository(db)
	from := models.NewDate(2024, time.April, 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM homeworks WHERE class_subject_id = $1 AND due_date >= $2 ORDER BY id")).
		WithArgs(int64(4), from.Time).
		WillReturnRows(sqlmock.NewRows(homeworkRowColumns).AddRow(int64(1), int64(4), "Essay", from.Time))

	items, err := repo.ListByClassSubjectDueFrom(context.Background(), 4, from)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, from, items[0].DueDate)

	window := models.Window{Start: from, End: from.AddDays(7)}
	mock.ExpectQuery(regexp.QuoteMeta("FROM homeworks WHERE class_subject_id = $1 AND due_date >= $2 AND due_date <= $3")).
		WithArgs(int64(4), window.Start.Time, window.End.Time).
		WillReturnRows(sqlmock.NewRows(homeworkRowColumns))

	items, err = repo.ListByClassSubjectInWindow(context.Background(), 4, window)
	require.NoError(t, err)
	require.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	item := &models.Homework{ClassSubjectID: 4, Description: "Read chapter 3", DueDate: models.NewDate(2024, time.April, 5)}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO homeworks (class_subject_id, description, due_date)")).
		WithArgs(int64(4), "Read chapter 3", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(31)))

	require.NoError(t, NewHomeworkRepository(db).Create(context.Background(), item))
	require.Equal(t, int64(31), item.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

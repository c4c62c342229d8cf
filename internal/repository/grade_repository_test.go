package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/models"
)

var gradeRowColumns = []string{"id", "student_id", "class_subject_id", "grade_value", "date"}

func TestGradeRepositoryCreateAndFind(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewGradeRepository(db)
	grade := &models.Grade{StudentID: 3, ClassSubjectID: 9, GradeValue: "A", Date: models.NewDate(2024, time.March, 4)}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO grades (student_id, class_subject_id, grade_value, date)")).
		WithArgs(int64(3), int64(9), "A", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	require.NoError(t, repo.Create(context.Background(), grade))
	require.Equal(t, int64(12), grade.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, class_subject_id, grade_value, date FROM grades WHERE id = $1")).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(gradeRowColumns).AddRow(int64(12), int64(3), int64(9), "A", time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)))

	found, err := repo.FindByID(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, *grade, *found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryFindMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM grades WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewGradeRepository(db).FindByID(context.Background(), 5)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryListByStudentInWindow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	window := models.Window{Start: models.NewDate(2024, time.January, 8), End: models.NewDate(2024, time.March, 29)}
	rows := sqlmock.NewRows(gradeRowColumns).
		AddRow(int64(1), int64(3), int64(9), "B", time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)).
		AddRow(int64(2), int64(3), int64(9), "A", time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(regexp.QuoteMeta("FROM grades WHERE student_id = $1 AND date >= $2 AND date <= $3")).
		WithArgs(int64(3), window.Start.Time, window.End.Time).
		WillReturnRows(rows)

	grades, err := NewGradeRepository(db).ListByStudentInWindow(context.Background(), 3, window)
	require.NoError(t, err)
	require.Len(t, grades, 2)
	require.Equal(t, window.Start, grades[0].Date)
	require.Equal(t, window.End, grades[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryListByClassSubjectInWindowEmpty(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM grades WHERE class_subject_id = $1 AND date >= $2 AND date <= $3")).
		WithArgs(int64(9), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(gradeRowColumns))

	grades, err := NewGradeRepository(db).ListByClassSubjectInWindow(context.Background(), 9, models.Window{
		Start: models.NewDate(2024, time.January, 1),
		End:   models.NewDate(2024, time.January, 31),
	})
	require.NoError(t, err)
	require.NotNil(t, grades)
	require.Empty(t, grades)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryUpdateNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE grades SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewGradeRepository(db).Update(context.Background(), &models.Grade{ID: 4, Date: models.NewDate(2024, time.May, 1)})
	require.ErrorIs(t, err, ErrNoRowsAffected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	repo := NewGradeRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM grades WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 4))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM grades WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(context.Background(), 5), sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

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

func TestTermRepositoryListBySchool(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "school_id", "name", "start_date", "end_date"}).
		AddRow(int64(1), int64(2), "Q1", time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, time.October, 27, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, school_id, name, start_date, end_date FROM terms WHERE school_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	terms, err := NewTermRepository(db).ListBySchool(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	require.Equal(t, models.NewDate(2024, time.September, 2), terms[0].StartDate)
	require.Equal(t, models.NewDate(2024, time.October, 27), terms[0].EndDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTermRepositoryCreateNoRow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO terms")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := NewTermRepository(db).Create(context.Background(), &models.Term{
		SchoolID:  2,
		Name:      "Q1",
		StartDate: models.NewDate(2024, time.September, 2),
		EndDate:   models.NewDate(2024, time.October, 27),
	})
	require.ErrorIs(t, err, ErrNoRowsAffected)
	require.NoError(t, mock.ExpectationsWereMet())
}

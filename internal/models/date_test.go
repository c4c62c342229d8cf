package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var hw Homework
	require.NoError(t, json.Unmarshal([]byte(`{"classSubjectId":3,"description":"read","dueDate":"2024-09-02"}`), &hw))
	assert.Equal(t, NewDate(2024, time.September, 2), hw.DueDate)

	out, err := json.Marshal(hw)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"dueDate":"2024-09-02"`)

	err = json.Unmarshal([]byte(`{"dueDate":"02/09/2024"}`), &hw)
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 31, 0, 0, 0, 0, time.FixedZone("X", 3*3600))))
	assert.Equal(t, NewDate(2024, time.May, 31), d)

	require.NoError(t, d.Scan([]byte("2024-06-01T00:00:00Z")))
	assert.Equal(t, NewDate(2024, time.June, 1), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.January, 15).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateAddDaysAcrossMonth(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 29).AddDays(1))
}

func TestWindowContainsBoundaries(t *testing.T) {
	w := Window{Start: NewDate(2024, 9, 1), End: NewDate(2024, 10, 31)}

	assert.True(t, w.Contains(NewDate(2024, 9, 1)))
	assert.True(t, w.Contains(NewDate(2024, 10, 31)))
	assert.True(t, w.Contains(NewDate(2024, 10, 1)))
	assert.False(t, w.Contains(NewDate(2024, 8, 31)))
	assert.False(t, w.Contains(NewDate(2024, 11, 1)))
	assert.False(t, w.Contains(Date{}))
	assert.False(t, w.Empty())
}

func TestWindowEmptyWhenInverted(t *testing.T) {
	w := Window{Start: NewDate(2024, 9, 2), End: NewDate(2024, 9, 1)}
	assert.True(t, w.Empty())
	assert.False(t, w.Contains(NewDate(2024, 9, 1)))

	single := Window{Start: NewDate(2024, 9, 1), End: NewDate(2024, 9, 1)}
	assert.False(t, single.Empty())
	assert.True(t, single.Contains(NewDate(2024, 9, 1)))
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RoleDirector.Valid())
	assert.False(t, UserRole("Admin").Valid())
	assert.False(t, UserRole("student").Valid())
}

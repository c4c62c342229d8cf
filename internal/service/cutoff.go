package service

import (
	"time"

	"github.com/noah-isme/school-services/internal/models"
)

// HomeworkCutoffHour is the local hour from which homework due today no
// longer counts as in date.
const HomeworkCutoffHour = 14

// Clock returns the current wall-clock time in the location the cutoff is
// evaluated in.
type Clock func() time.Time

// ClockIn returns a Clock reading the system time in loc.
func ClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// CutoffDate returns the earliest due date still considered in date at now:
// today before 14:00:00, tomorrow from 14:00:00 on.
func CutoffDate(now time.Time) models.Date {
	today := models.DateOf(now)
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), HomeworkCutoffHour, 0, 0, 0, now.Location())
	if now.Before(cutoff) {
		return today
	}
	return today.AddDays(1)
}

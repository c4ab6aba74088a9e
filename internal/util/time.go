package util

import (
	"time"

	"github.com/pulseboard/backend/internal/constant"
)

// GetDayStartTime floors to 12am UTC of the day of the given time. Calendar
// days are always resolved against UTC regardless of the caller's zone.
func GetDayStartTime(t time.Time) time.Time {
	utcT := t.UTC()
	return time.Date(utcT.Year(), utcT.Month(), utcT.Day(), 0, 0, 0, 0, time.UTC)
}

// GetDayEndTime returns 12am UTC of the day after the given time, i.e. the
// exclusive upper bound of the day containing t.
func GetDayEndTime(t time.Time) time.Time {
	return GetDayStartTime(t).AddDate(0, 0, 1)
}

// GetDayKey renders the UTC calendar day of t in ISO date form.
func GetDayKey(t time.Time) string {
	return t.UTC().Format(constant.DayFormat)
}

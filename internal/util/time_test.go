package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDayStartTime(t *testing.T) {
	in := time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), GetDayStartTime(in))

	// a non-UTC instant resolves to the UTC calendar day, not the local one
	loc := time.FixedZone("UTC+9", 9*3600)
	in = time.Date(2024, 3, 16, 3, 0, 0, 0, loc) // 2024-03-15T18:00:00Z
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), GetDayStartTime(in))
}

func TestGetDayEndTime(t *testing.T) {
	in := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), GetDayEndTime(in))

	// day boundaries roll over month ends
	in = time.Date(2024, 2, 29, 1, 2, 3, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), GetDayEndTime(in))
}

func TestGetDayKey(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2024, 12, 31, 23, 30, 0, 0, loc) // 2025-01-01T04:30:00Z
	assert.Equal(t, "2025-01-01", GetDayKey(in))
}

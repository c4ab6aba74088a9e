package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/backend/internal/model"
)

func activityAt(actionType string, at time.Time) *model.Activity {
	return &model.Activity{
		ActionType: actionType,
		CreatedAt:  at,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.TotalCount)
	assert.Empty(t, stats.ByType)
	assert.Empty(t, stats.ByDate)
	assert.False(t, stats.MostCommonAction.Valid, "most common action should be null with no records")
}

func TestSummarizeCounts(t *testing.T) {
	day := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	stats := Summarize([]*model.Activity{
		activityAt("login", day),
		activityAt("login", day.Add(time.Hour)),
		activityAt("click", day.Add(2*time.Hour)),
	})

	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, map[string]int{"login": 2, "click": 1}, stats.ByType)
	assert.Equal(t, map[string]int{"2024-05-01": 3}, stats.ByDate)
	assert.Equal(t, "login", stats.MostCommonAction.String)
}

func TestSummarizeTieBreaksToFirstEncounter(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	// both types reach 2; "export" shows up first in record order
	stats := Summarize([]*model.Activity{
		activityAt("export", day),
		activityAt("login", day),
		activityAt("login", day),
		activityAt("export", day),
	})

	assert.Equal(t, "export", stats.MostCommonAction.String)
}

func TestSummarizeBucketsByUTCDay(t *testing.T) {
	kst := time.FixedZone("UTC+9", 9*3600)

	stats := Summarize([]*model.Activity{
		// 2024-04-30T23:30:00Z despite the local day being May 1st
		activityAt("login", time.Date(2024, 5, 1, 8, 30, 0, 0, kst)),
		activityAt("login", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	})

	assert.Equal(t, map[string]int{"2024-04-30": 1, "2024-05-01": 1}, stats.ByDate)
}

func TestSummarizeBucketSumsMatchTotal(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	activities := []*model.Activity{
		activityAt("login", base),
		activityAt("click", base.Add(26*time.Hour)),
		activityAt("login", base.Add(49*time.Hour)),
		activityAt("export", base.Add(49*time.Hour)),
		activityAt("login", base.Add(73*time.Hour)),
	}

	stats := Summarize(activities)

	byTypeSum := 0
	for _, n := range stats.ByType {
		byTypeSum += n
	}
	byDateSum := 0
	for _, n := range stats.ByDate {
		byDateSum += n
	}

	assert.Equal(t, stats.TotalCount, byTypeSum)
	assert.Equal(t, stats.TotalCount, byDateSum)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	activities := []*model.Activity{
		activityAt("login", base),
		activityAt("click", base.Add(time.Minute)),
		activityAt("click", base.Add(2*time.Minute)),
	}

	assert.Equal(t, Summarize(activities), Summarize(activities))
}

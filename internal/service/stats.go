package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/model/types"
	"github.com/pulseboard/backend/internal/pkg/observability"
	"github.com/pulseboard/backend/internal/pkg/pberr"
	"github.com/pulseboard/backend/internal/repo"
	"github.com/pulseboard/backend/internal/util"
)

type Stats struct {
	ActivityRepo *repo.Activity
}

func NewStats(activityRepo *repo.Activity) *Stats {
	return &Stats{
		ActivityRepo: activityRepo,
	}
}

// GetUserStats aggregates the owner's activities inside the optional
// inclusive [start_date, end_date] window. Day boundaries resolve against
// UTC, so the window becomes the half-open instant range
// [start 00:00, end+1d 00:00). Stats are recomputed on every call.
func (s *Stats) GetUserStats(ctx context.Context, userID int, query *types.ActivityStatsQuery) (*model.ActivityStats, error) {
	var from, to *time.Time

	if query.StartDate != "" {
		day, err := time.Parse(constant.DayFormat, query.StartDate)
		if err != nil {
			return nil, pberr.ErrInvalidReq.Msg("invalid start_date: %s", err)
		}
		f := util.GetDayStartTime(day)
		from = &f
	}

	if query.EndDate != "" {
		day, err := time.Parse(constant.DayFormat, query.EndDate)
		if err != nil {
			return nil, pberr.ErrInvalidReq.Msg("invalid end_date: %s", err)
		}
		t := util.GetDayEndTime(day)
		to = &t
	}

	if from != nil && to != nil && !from.Before(*to) {
		return nil, pberr.ErrInvalidReq.Msg("start_date must not be after end_date")
	}

	activities, err := s.ActivityRepo.ListByUserWithin(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	stats := Summarize(activities)
	observability.StatsSummarizeDuration.WithLabelValues().Observe(time.Since(start).Seconds())

	return stats, nil
}

// Summarize folds a record set into its derived stats. It is a pure function
// of its input: feeding the same records twice yields identical output.
//
// The most common action resolves ties toward the type encountered first in
// record order, so callers wanting deterministic ties must pass records in
// insertion order.
func Summarize(activities []*model.Activity) *model.ActivityStats {
	stats := &model.ActivityStats{
		TotalCount: len(activities),
		ByType:     map[string]int{},
		ByDate:     map[string]int{},
	}

	typeOrder := make([]string, 0, 8)
	for _, activity := range activities {
		if _, seen := stats.ByType[activity.ActionType]; !seen {
			typeOrder = append(typeOrder, activity.ActionType)
		}
		stats.ByType[activity.ActionType]++
		stats.ByDate[util.GetDayKey(activity.CreatedAt)]++
	}

	if len(typeOrder) > 0 {
		top := lo.MaxBy(typeOrder, func(a, b string) bool {
			return stats.ByType[a] > stats.ByType[b]
		})
		stats.MostCommonAction = null.StringFrom(top)
	}

	return stats
}

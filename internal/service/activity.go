package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/model/types"
	"github.com/pulseboard/backend/internal/pkg/observability"
	"github.com/pulseboard/backend/internal/pkg/pberr"
	"github.com/pulseboard/backend/internal/repo"
)

type Activity struct {
	ActivityRepo *repo.Activity
}

func NewActivity(activityRepo *repo.Activity) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
	}
}

func (s *Activity) Create(ctx context.Context, user *model.User, req *types.CreateActivityRequest) (*model.Activity, error) {
	activity := &model.Activity{
		UserID:      user.UserID,
		ActionType:  req.ActionType,
		Description: req.Description,
		ExtraData:   req.ExtraData,
	}

	if err := s.ActivityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *Activity) List(ctx context.Context, user *model.User, query *types.ListActivitiesQuery) ([]*model.Activity, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = constant.DefaultPageSize
	}

	activities, err := s.ActivityRepo.ListByUser(ctx, user.UserID, query.ActionType, limit, query.Offset)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		// an exhausted page marshals as [] rather than null
		activities = make([]*model.Activity, 0)
	}

	return activities, nil
}

// GetForUser returns the activity only when it is owned by user. A record
// owned by someone else is indistinguishable from an absent one so ids are
// not probeable across owners.
func (s *Activity) GetForUser(ctx context.Context, user *model.User, activityID int) (*model.Activity, error) {
	activity, err := s.ActivityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if activity.UserID != user.UserID {
		return nil, pberr.ErrNotFound
	}

	return activity, nil
}

func (s *Activity) DeleteForUser(ctx context.Context, user *model.User, activityID int) error {
	if _, err := s.GetForUser(ctx, user, activityID); err != nil {
		return err
	}

	return s.ActivityRepo.DeleteByID(ctx, activityID)
}

// PruneOlderThan removes activities of every owner created more than the
// given number of days ago and reports how many rows went away.
func (s *Activity) PruneOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	deleted, err := s.ActivityRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	observability.ActivitiesPruned.WithLabelValues().Add(float64(deleted))
	log.Info().
		Str("evt.name", "activity.prune").
		Time("cutoff", cutoff).
		Int64("deleted", deleted).
		Msg("pruned aged activities")

	return deleted, nil
}

package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/pkg/pberr"
	"github.com/pulseboard/backend/internal/repo/selector"
)

type Activity struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{
		db:  db,
		sel: selector.New[model.Activity](db),
	}
}

// Create inserts the activity and backfills its generated id. The creation
// timestamp is assigned here so it is non-decreasing with insertion order.
func (r *Activity) Create(ctx context.Context, activity *model.Activity) error {
	activity.CreatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(activity).
		Returning("activity_id").
		Exec(ctx)
	if err != nil {
		if isIntegrityViolation(err) {
			return pberr.ErrConstraint.Msg("activity owner does not exist")
		}
		return errors.Wrap(err, "failed to create activity")
	}

	return nil
}

// GetByID looks an activity up with no owner filter: ownership enforcement
// is the caller's concern, keeping the store reusable across surfaces.
func (r *Activity) GetByID(ctx context.Context, activityID int) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("activity_id = ?", activityID)
	})
}

// ListByUser returns one page of the owner's activities, most recent first.
// Identifier order breaks ties between equal timestamps so pages are stable.
// actionType narrows to an exact match when non-empty.
func (r *Activity) ListByUser(ctx context.Context, userID int, actionType string, limit, offset int) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("user_id = ?", userID)
		if actionType != "" {
			q = q.Where("action_type = ?", actionType)
		}
		return q.
			Order("created_at DESC", "activity_id DESC").
			Limit(limit).
			Offset(offset)
	})
}

// ListByUserWithin returns all of the owner's activities inside the half-open
// instant window [from, to), in insertion order. Nil bounds are unbounded.
func (r *Activity) ListByUserWithin(ctx context.Context, userID int, from, to *time.Time) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("user_id = ?", userID)
		if from != nil {
			q = q.Where("created_at >= ?", *from)
		}
		if to != nil {
			q = q.Where("created_at < ?", *to)
		}
		return q.Order("activity_id ASC")
	})
}

// DeleteByID removes one activity. Deleting an absent id reports not-found
// instead of succeeding silently.
func (r *Activity) DeleteByID(ctx context.Context, activityID int) error {
	result, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("activity_id = ?", activityID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete activity")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return pberr.ErrNotFound
	}

	return nil
}

// DeleteOlderThan removes every activity, across all owners, created strictly
// before the cutoff. It returns the number of rows removed, zero included.
func (r *Activity) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("created_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune activities")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read affected rows")
	}

	return rows, nil
}

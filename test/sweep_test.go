package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/model/types"
	"github.com/pulseboard/backend/internal/pkg/testentry"
	"github.com/pulseboard/backend/internal/repo"
	"github.com/pulseboard/backend/internal/service"
)

// seedUser inserts an account straight into the database, bypassing the
// register endpoint. Rows older than the retention window can only be
// produced this way since the API always stamps rows with the current time.
func seedUser(t *testing.T, ctx context.Context, db *bun.DB) *model.User {
	t.Helper()

	user := &model.User{
		Username:     uniqueName(),
		Email:        uniqueName() + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC(),
	}
	_, err := db.NewInsert().Model(user).Exec(ctx)
	require.NoError(t, err)
	require.NotZero(t, user.UserID)

	return user
}

func seedActivityAt(t *testing.T, ctx context.Context, db *bun.DB, userID int, actionType string, at time.Time) *model.Activity {
	t.Helper()

	activity := &model.Activity{
		UserID:     userID,
		ActionType: actionType,
		CreatedAt:  at,
	}
	_, err := db.NewInsert().Model(activity).Exec(ctx)
	require.NoError(t, err)
	require.NotZero(t, activity.ActivityID)

	return activity
}

func TestActivitySweep(t *testing.T) {
	var (
		db              *bun.DB
		activityService *service.Activity
	)
	testentry.Populate(t, &db, &activityService)

	ctx := context.Background()
	require.NoError(t, repo.CreateSchema(ctx, db))

	user := seedUser(t, ctx, db)
	aged := seedActivityAt(t, ctx, db, user.UserID, "login", time.Now().UTC().AddDate(0, 0, -120))
	fresh := seedActivityAt(t, ctx, db, user.UserID, "login", time.Now().UTC())

	deleted, err := activityService.PruneOlderThan(ctx, 90)
	require.NoError(t, err)
	// Stale rows from earlier runs may be swept alongside ours.
	assert.GreaterOrEqual(t, deleted, int64(1))

	count, err := db.NewSelect().Model((*model.Activity)(nil)).Where("activity_id = ?", aged.ActivityID).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = db.NewSelect().Model((*model.Activity)(nil)).Where("activity_id = ?", fresh.ActivityID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStatsWindowAcrossDays(t *testing.T) {
	var (
		db           *bun.DB
		statsService *service.Stats
	)
	testentry.Populate(t, &db, &statsService)

	ctx := context.Background()
	require.NoError(t, repo.CreateSchema(ctx, db))

	user := seedUser(t, ctx, db)
	now := time.Now().UTC()
	seedActivityAt(t, ctx, db, user.UserID, "login", now.AddDate(0, 0, -2))
	seedActivityAt(t, ctx, db, user.UserID, "login", now.AddDate(0, 0, -1))
	seedActivityAt(t, ctx, db, user.UserID, "export", now)

	stats, err := statsService.GetUserStats(ctx, user.UserID, &types.ActivityStatsQuery{
		StartDate: now.AddDate(0, 0, -1).Format(constant.DayFormat),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCount)
	assert.Len(t, stats.ByDate, 2)
	assert.Equal(t, map[string]int{"login": 1, "export": 1}, stats.ByType)
}

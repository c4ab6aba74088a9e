package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/pkg/pberr"
	"github.com/pulseboard/backend/internal/repo/selector"
)

type User struct {
	db  *bun.DB
	sel selector.S[model.User]
}

func NewUser(db *bun.DB) *User {
	return &User{
		db:  db,
		sel: selector.New[model.User](db),
	}
}

// Create inserts the user and backfills its generated id. Uniqueness races on
// username or email surface as a constraint error rather than a plain driver
// error so the caller can render them.
func (r *User) Create(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(user).
		Returning("user_id").
		Exec(ctx)
	if err != nil {
		if isIntegrityViolation(err) {
			return pberr.ErrConstraint.Msg("username or email already registered")
		}
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (r *User) GetByID(ctx context.Context, userID int) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	})
}

func (r *User) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("username = ?", username)
	})
}

func (r *User) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("email = ?", email)
	})
}

// isIntegrityViolation reports whether err is a postgres integrity constraint
// violation, which covers unique and foreign key breaches.
func isIntegrityViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

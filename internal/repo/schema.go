package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/pulseboard/backend/internal/model"
)

// CreateSchema provisions the tables and indexes the backend expects. It is
// idempotent and intended for fresh environments and integration tests.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*model.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to create users table")
	}

	if _, err := db.NewCreateTable().
		Model((*model.Activity)(nil)).
		IfNotExists().
		ForeignKey(`("user_id") REFERENCES "users" ("user_id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to create activities table")
	}

	indexes := []struct {
		name   string
		column string
	}{
		{"activities_user_id_idx", "user_id"},
		{"activities_action_type_idx", "action_type"},
		{"activities_created_at_idx", "created_at"},
	}
	for _, idx := range indexes {
		if _, err := db.NewCreateIndex().
			Model((*model.Activity)(nil)).
			Index(idx.name).
			Column(idx.column).
			IfNotExists().
			Exec(ctx); err != nil {
			return errors.Wrapf(err, "failed to create index %s", idx.name)
		}
	}

	return nil
}

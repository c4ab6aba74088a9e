package model

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Activity is a single recorded user action. Rows are insert-only: an
// activity is never updated in place, only created, aged out or deleted by
// its owner.
type Activity struct {
	bun.BaseModel `bun:"activities"`

	ActivityID  int             `bun:",pk,autoincrement" json:"id"`
	UserID      int             `bun:",notnull" json:"user_id"`
	ActionType  string          `bun:",notnull" json:"action_type"`
	Description null.String     `bun:"description" json:"description" swaggertype:"string"`
	ExtraData   json.RawMessage `bun:"extra_data,type:jsonb,nullzero" json:"extra_data"`
	CreatedAt   time.Time       `bun:",notnull" json:"created_at"`
}

package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an account able to authenticate and own activities. The password
// hash never leaves the process boundary.
type User struct {
	bun.BaseModel `bun:"users"`

	UserID       int       `bun:",pk,autoincrement" json:"id"`
	Username     string    `bun:",notnull,unique" json:"username"`
	Email        string    `bun:",notnull,unique" json:"email"`
	PasswordHash string    `bun:",notnull" json:"-"`
	CreatedAt    time.Time `bun:",notnull" json:"created_at"`
}

package types

import (
	"github.com/goccy/go-json"

	"gopkg.in/guregu/null.v3"
)

type CreateActivityRequest struct {
	ActionType  string          `json:"action_type" validate:"required,min=1,max=100" example:"login"`
	Description null.String     `json:"description" swaggertype:"string"`
	ExtraData   json.RawMessage `json:"extra_data" swaggertype:"object"`
}

type ListActivitiesQuery struct {
	// Limit falls back to the server default when omitted. There is no
	// upper bound: the caller owns its page size.
	Limit      int    `query:"limit" validate:"omitempty,gte=1"`
	Offset     int    `query:"offset" validate:"omitempty,gte=0"`
	ActionType string `query:"action_type" validate:"omitempty,min=1,max=100"`
}

type ActivityStatsQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2024-01-31"`
}

package model

import (
	"gopkg.in/guregu/null.v3"
)

// ActivityStats is derived on demand and never persisted.
//
// ByType and ByDate only carry buckets actually present in the filtered set;
// absent types or days are not zero-filled. MostCommonAction is null when the
// filtered set is empty.
type ActivityStats struct {
	TotalCount       int            `json:"total_count"`
	ByType           map[string]int `json:"by_type"`
	ByDate           map[string]int `json:"by_date"`
	MostCommonAction null.String    `json:"most_common_action" swaggertype:"string"`
}

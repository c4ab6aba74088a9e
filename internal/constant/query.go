package constant

const (
	// DefaultPageSize applies when a listing request omits `limit`.
	// There is deliberately no upper bound: callers own their page size.
	DefaultPageSize = 50

	// DefaultRetentionDays is the cutoff used by the sweep command when
	// no explicit day threshold is given.
	DefaultRetentionDays = 90
)

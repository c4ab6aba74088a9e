package constant

const (
	// DayFormat is the calendar-day layout used for stats bucketing and
	// for the start/end date query parameters.
	DayFormat = "2006-01-02"
)

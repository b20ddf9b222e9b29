package timeutil

import "time"

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// EventTimestampLayout matches the scoreboard event_date field, which
	// carries both the date and the local start time.
	EventTimestampLayout = "2006-01-02 15:04"

	// ReportDateLayout is the date format used in the client-facing report.
	ReportDateLayout = "02-01-2006"

	// ReportTimeLayout is the time-of-day format used in the client-facing report.
	ReportTimeLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SplitTimestamp splits a scoreboard timestamp into its report-formatted
// date (DD-MM-YYYY) and time (HH:MM) components.
func SplitTimestamp(value string) (string, string, error) {
	parsed, err := time.Parse(EventTimestampLayout, value)
	if err != nil {
		return "", "", err
	}
	return parsed.Format(ReportDateLayout), parsed.Format(ReportTimeLayout), nil
}

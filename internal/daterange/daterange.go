// Package daterange resolves the inclusive fetch window for a run.
package daterange

import (
	"errors"
	"time"

	"github.com/preston-bernstein/nfl-events-etl/internal/timeutil"
)

// MaxDelta caps the window size; the upstream scoreboard endpoint serves at
// most eight days (start plus seven) per request.
const MaxDelta = 7

// ErrDeltaOutOfRange indicates a delta outside the supported [0,7] window.
var ErrDeltaOutOfRange = errors.New("delta must be between 0 and 7 days inclusive")

// Range is an inclusive calendar window.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve computes the inclusive window starting at start and spanning delta
// additional days. It fails when delta falls outside [0, MaxDelta].
func Resolve(start time.Time, delta int) (Range, error) {
	if delta < 0 || delta > MaxDelta {
		return Range{}, ErrDeltaOutOfRange
	}
	return Range{
		Start: start,
		End:   start.AddDate(0, 0, delta),
	}, nil
}

// StartDate returns the window start formatted as YYYY-MM-DD.
func (r Range) StartDate() string {
	return timeutil.FormatDate(r.Start)
}

// EndDate returns the window end formatted as YYYY-MM-DD.
func (r Range) EndDate() string {
	return timeutil.FormatDate(r.End)
}

// Dates enumerates every date in the window, formatted as YYYY-MM-DD.
func (r Range) Dates() []string {
	var dates []string
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, timeutil.FormatDate(d))
	}
	return dates
}

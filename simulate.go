package cronwhen

import "time"

const (
	// DefaultRunCount is how many upcoming run times a validation
	// reports when the caller does not ask for a specific number.
	DefaultRunCount = 5

	// DefaultIterationCap bounds the brute-force minute scan in
	// NextAfter: three 365-day years of minutes. An expression that
	// matches nothing inside that window (or nothing at all, like a
	// February 30th) stops there instead of spinning forever. The cap
	// bounds worst-case latency, so overriding it changes both how
	// long a search may take and how far it can see.
	DefaultIterationCap = 3 * 365 * 24 * 60
)

// NextAfter simulates the expression forward from now and returns up to
// count upcoming run times at minute resolution, in increasing order.
// The scan starts at the next whole minute after now and gives up after
// iterationCap candidate minutes, so fewer than count results means the
// cap ran out. Zero or negative count and iterationCap select
// DefaultRunCount and DefaultIterationCap.
func (e *Expression) NextAfter(now time.Time, count, iterationCap int) []time.Time {
	if count <= 0 {
		count = DefaultRunCount
	}
	if iterationCap <= 0 {
		iterationCap = DefaultIterationCap
	}

	runs := make([]time.Time, 0, count)
	cursor := now.Truncate(time.Minute).Add(time.Minute)
	for i := 0; i < iterationCap && len(runs) < count; i++ {
		if e.matches(cursor) {
			runs = append(runs, cursor)
		}
		cursor = cursor.Add(time.Minute)
	}
	return runs
}

// Next returns the first run time after now, or the zero time if none
// exists within DefaultIterationCap minutes.
func (e *Expression) Next(now time.Time) time.Time {
	runs := e.NextAfter(now, 1, 0)
	if len(runs) == 0 {
		return time.Time{}
	}
	return runs[0]
}

// matches reports whether t is a firing minute for the expression.
// Minute, hour and month are a plain AND; the day axis follows POSIX
// cron: when both day-of-month and day-of-week are constrained either
// one matching is enough, otherwise the constrained side (if any) must
// match.
func (e *Expression) matches(t time.Time) bool {
	if !e.fields[fieldMinute].set.has(t.Minute()) {
		return false
	}
	if !e.fields[fieldHour].set.has(t.Hour()) {
		return false
	}
	if !e.fields[fieldMonth].set.has(int(t.Month())) {
		return false
	}

	dom := e.fields[fieldDayOfMonth]
	dow := e.fields[fieldDayOfWeek]
	domHit := dom.set.has(t.Day())
	dowHit := dow.set.has(int(t.Weekday()))

	switch {
	case dom.wildcard && dow.wildcard:
		return true
	case dom.wildcard:
		return dowHit
	case dow.wildcard:
		return domHit
	default:
		return domHit || dowHit
	}
}

package cronwhen

import (
	"fmt"
	"strconv"
	"strings"
)

// weekday set shorthands recognized by the day-of-week phrase.
const (
	weekdaySet fieldSet = 1<<1 | 1<<2 | 1<<3 | 1<<4 | 1<<5
	weekendSet fieldSet = 1<<0 | 1<<6
)

// Describe renders the expression as one declarative English sentence,
// e.g. "It runs at 09:30, on the 1st day of the month, every month."
//
// When both day-of-month and day-of-week are constrained they are joined
// with "and" even though matching treats them as an OR (see Next). That
// wording mirrors classic cron describers and is kept as-is.
func (e *Expression) Describe() string {
	parts := []string{e.timePhrase()}
	if day := e.dayPhrase(); day != "" {
		parts = append(parts, day)
	}
	parts = append(parts, e.monthPhrase())
	return "It runs " + strings.Join(parts, ", ") + "."
}

func (e *Expression) timePhrase() string {
	minute := e.fields[fieldMinute]
	hour := e.fields[fieldHour]
	m, singleMinute := minute.single()
	h, singleHour := hour.single()

	switch {
	case minute.full() && hour.full():
		return "every minute"
	case hour.full() && singleMinute:
		return fmt.Sprintf("at minute %d of every hour", m)
	case minute.full() && singleHour:
		return fmt.Sprintf("every minute during %02d:00 hour", h)
	case singleMinute && singleHour:
		return fmt.Sprintf("at %02d:%02d", h, m)
	}

	// Generic fallback for mixed sets; a full hour field adds nothing.
	if hour.full() {
		return genericPhrase(minute)
	}
	return genericPhrase(minute) + " past " + genericPhrase(hour)
}

// genericPhrase is the per-field fallback: "every minute" for a full
// domain, "minute 30" for a singleton, "every 5 minutes" for a step
// pattern, and a bracketed list otherwise.
func genericPhrase(f Field) string {
	if f.full() {
		return "every " + f.spec.unit
	}
	if v, ok := f.single(); ok {
		return f.spec.unit + " " + f.display(v)
	}
	if step, ok := f.uniformStep(); ok {
		return fmt.Sprintf("every %d %s", step, f.spec.units)
	}
	return f.spec.units + " " + bracketList(f)
}

// dayPhrase applies the day-of-month/day-of-week combination rule: both
// wildcards drop the clause entirely, one constrained side stands alone,
// and two constrained sides are joined with "and".
func (e *Expression) dayPhrase() string {
	dom := e.fields[fieldDayOfMonth]
	dow := e.fields[fieldDayOfWeek]

	switch {
	case dom.wildcard && dow.wildcard:
		return ""
	case dow.wildcard:
		return e.dayOfMonthPhrase()
	case dom.wildcard:
		return e.dayOfWeekPhrase()
	default:
		return e.dayOfMonthPhrase() + " and " + e.dayOfWeekPhrase()
	}
}

func (e *Expression) dayOfMonthPhrase() string {
	dom := e.fields[fieldDayOfMonth]
	if dom.full() {
		return "every day of the month"
	}
	if v, ok := dom.single(); ok {
		return fmt.Sprintf("on the %s day of the month", ordinal(v))
	}
	if step, ok := dom.uniformStep(); ok {
		return fmt.Sprintf("every %s day of the month", ordinal(step))
	}
	ordinals := make([]string, 0, dom.set.count())
	for _, v := range dom.set.values() {
		ordinals = append(ordinals, ordinal(v))
	}
	return fmt.Sprintf("on days [%s] of the month", strings.Join(ordinals, ", "))
}

func (e *Expression) monthPhrase() string {
	month := e.fields[fieldMonth]
	if month.full() {
		return "every month"
	}
	if v, ok := month.single(); ok {
		return "in " + monthName(v)
	}
	if step, ok := month.uniformStep(); ok {
		return fmt.Sprintf("every %d months", step)
	}
	return "in " + bracketList(month)
}

func (e *Expression) dayOfWeekPhrase() string {
	dow := e.fields[fieldDayOfWeek]
	switch dow.set {
	case weekdaySet:
		return "on weekdays"
	case weekendSet:
		return "on weekends"
	}
	if dow.full() {
		return "every day of the week"
	}
	if v, ok := dow.single(); ok {
		return "on " + weekdayName(v)
	}
	return "on " + bracketList(dow)
}

func bracketList(f Field) string {
	names := make([]string, 0, f.set.count())
	for _, v := range f.set.values() {
		names = append(names, f.display(v))
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// ordinal renders 1 -> "1st", 2 -> "2nd", 11 -> "11th" and so on, with
// the usual 11-13 exception.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

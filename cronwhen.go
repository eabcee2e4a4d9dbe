// Package cronwhen : a cron expression engine.
//
// cronwhen parses standard five-field cron expressions, validates them
// against the classic field grammar, renders a plain-English sentence
// describing when they fire, and simulates their upcoming run times at
// minute resolution. It schedules nothing and persists nothing; it is
// the read-only half of cron, meant for linting crontabs and showing a
// user what an expression actually means.
package cronwhen

import "time"

// fieldKey identifies one of the five cron positions, in crontab order.
type fieldKey int

const (
	fieldMinute fieldKey = iota
	fieldHour
	fieldDayOfMonth
	fieldMonth
	fieldDayOfWeek

	numFields
)

// fieldSpec is the static shape of one cron position: its bounds, the
// label used in error messages, the unit nouns used in prose, and an
// optional value renderer (month and weekday names).
//
// inputMax can exceed max: day-of-week accepts 0-7 on input, and a
// normalize hook folds 7 back to 0 (both mean Sunday) before the value
// lands in the set.
type fieldSpec struct {
	key       fieldKey
	label     string
	min, max  int
	inputMax  int
	unit      string
	units     string
	display   func(int) string
	normalize func(int) int
}

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthName(v int) string {
	return monthNames[v-1]
}

func weekdayName(v int) string {
	return time.Weekday(v).String()
}

var fieldSpecs = [numFields]fieldSpec{
	{
		key:      fieldMinute,
		label:    "Minute",
		min:      0,
		max:      59,
		inputMax: 59,
		unit:     "minute",
		units:    "minutes",
	},
	{
		key:      fieldHour,
		label:    "Hour",
		min:      0,
		max:      23,
		inputMax: 23,
		unit:     "hour",
		units:    "hours",
	},
	{
		key:      fieldDayOfMonth,
		label:    "Day of month",
		min:      1,
		max:      31,
		inputMax: 31,
		unit:     "day of the month",
		units:    "days of the month",
	},
	{
		key:      fieldMonth,
		label:    "Month",
		min:      1,
		max:      12,
		inputMax: 12,
		unit:     "month",
		units:    "months",
		display:  monthName,
	},
	{
		key:      fieldDayOfWeek,
		label:    "Day of week",
		min:      0,
		max:      6,
		inputMax: 7,
		unit:     "day of the week",
		units:    "days of the week",
		display:  weekdayName,
		normalize: func(v int) int {
			if v == 7 {
				return 0
			}
			return v
		},
	},
}

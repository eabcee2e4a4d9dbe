package cronwhen

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAfter_StartsAtNextWholeMinute(t *testing.T) {
	e, err := Parse("* * * * *")
	require.NoError(t, err)

	now := time.Date(2026, 2, 3, 9, 0, 30, 123456789, time.UTC)
	runs := e.NextAfter(now, 3, 0)

	require.Len(t, runs, 3)
	assert.Equal(t, time.Date(2026, 2, 3, 9, 1, 0, 0, time.UTC), runs[0])
	assert.Equal(t, time.Date(2026, 2, 3, 9, 2, 0, 0, time.UTC), runs[1])
	assert.Equal(t, time.Date(2026, 2, 3, 9, 3, 0, 0, time.UTC), runs[2])
}

func TestNextAfter_OnTheMinuteStillAdvances(t *testing.T) {
	e, err := Parse("* * * * *")
	require.NoError(t, err)

	now := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	runs := e.NextAfter(now, 1, 0)

	require.Len(t, runs, 1)
	assert.Equal(t, time.Date(2026, 2, 3, 9, 1, 0, 0, time.UTC), runs[0])
}

func TestNextAfter_StrictlyIncreasing(t *testing.T) {
	e, err := Parse("*/10 6-18 * * *")
	require.NoError(t, err)

	now := time.Date(2026, 8, 26, 17, 55, 12, 0, time.UTC)
	runs := e.NextAfter(now, 20, 0)

	require.Len(t, runs, 20)
	for i := 1; i < len(runs); i++ {
		assert.True(t, runs[i].After(runs[i-1]))
	}
	for _, run := range runs {
		assert.False(t, run.Before(now))
		assert.Zero(t, run.Second())
	}
}

// The first of the month and Mondays are alternatives, not a
// conjunction: either side matching fires the schedule.
func TestNextAfter_DayOfMonthOrDayOfWeek(t *testing.T) {
	e, err := Parse("0 0 1 * 1")
	require.NoError(t, err)

	// 2026-08-31 is a Monday but not the 1st; 2026-09-01 is a Tuesday
	// and the 1st. Both must appear.
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	runs := e.NextAfter(now, 5, 0)

	expected := []time.Time{
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, expected, runs)
}

func TestNextAfter_ConstrainedDayAxisNeedsItsMatch(t *testing.T) {
	// Day-of-month wildcard with a constrained weekday: only the
	// weekday side counts.
	e, err := Parse("0 0 * * 1")
	require.NoError(t, err)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	runs := e.NextAfter(now, 2, 0)

	expected := []time.Time{
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, expected, runs)
}

func TestNextAfter_SundaySevenMatchesSundayZero(t *testing.T) {
	seven, err := Parse("0 0 * * 7")
	require.NoError(t, err)
	zero, err := Parse("0 0 * * 0")
	require.NoError(t, err)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, zero.NextAfter(now, 4, 0), seven.NextAfter(now, 4, 0))
}

func TestNextAfter_CapExhausted(t *testing.T) {
	// February 30th never exists, so the scan hits the cap and comes
	// back short.
	e, err := Parse("0 0 30 2 *")
	require.NoError(t, err)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	runs := e.NextAfter(now, 5, 100000)
	assert.Empty(t, runs)
}

func TestNextAfter_SmallCapTruncatesResults(t *testing.T) {
	e, err := Parse("*/30 * * * *")
	require.NoError(t, err)

	// 45 candidate minutes starting at 12:01 hold only one match
	// (12:30); the second (13:00) is past the cap.
	now := time.Date(2026, 8, 26, 12, 0, 30, 0, time.UTC)
	runs := e.NextAfter(now, 5, 45)

	require.Len(t, runs, 1)
	assert.Equal(t, time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC), runs[0])
}

func TestNext(t *testing.T) {
	e, err := Parse("30 14 1 8 *")
	require.NoError(t, err)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, 8, 1, 14, 30, 0, 0, time.UTC), e.Next(now))

	never, err := Parse("0 0 31 2 *")
	require.NoError(t, err)
	assert.True(t, never.Next(now).IsZero())
}

// Cross-check the simulator against robfig/cron's standard parser for
// expressions where the two engines agree on wildcard semantics (robfig
// treats "*/n" day fields as unrestricted, so those stay out of the
// day positions here). The yearly expression only fits three runs
// inside DefaultIterationCap's three-year window.
func TestNextAfter_AgreesWithRobfigCron(t *testing.T) {
	tests := []struct {
		expression   string
		expectedRuns int
	}{
		{"* * * * *", 8},
		{"*/15 * * * *", 8},
		{"0 9 * * 1", 8},
		{"30 14 1 8 *", 3},
		{"0 0 1,15 * 1", 8},
		{"5 4 * * 0", 8},
		{"0 */6 * * *", 8},
	}

	now := time.Date(2026, 8, 26, 12, 0, 30, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			e, err := Parse(tt.expression)
			require.NoError(t, err)

			schedule, err := cron.ParseStandard(tt.expression)
			require.NoError(t, err)

			runs := e.NextAfter(now, 8, 0)
			require.Len(t, runs, tt.expectedRuns)

			cursor := now
			for i, run := range runs {
				cursor = schedule.Next(cursor)
				assert.Equal(t, cursor, run, "run %d of %s", i, tt.expression)
			}
		})
	}
}

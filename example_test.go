package cronwhen_test

import (
	"fmt"
	"time"

	"github.com/cronwhen/cronwhen"
)

func ExampleValidate() {
	result := cronwhen.Validate("*/5 * * * *")
	fmt.Println(result.OK())
	fmt.Println(result.Summary)
	// Output:
	// true
	// It runs every 5 minutes, every month.
}

func ExampleValidate_invalid() {
	result := cronwhen.Validate("60 * * * *")
	fmt.Println(result.OK())
	fmt.Println(result.Err)
	// Output:
	// false
	// cronwhen: Minute: value 60 out of range 0-59
}

func ExampleParse() {
	e, err := cronwhen.Parse("0 9 1 * 1")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e.Describe())
	fmt.Println(e.DayOfWeek().Values())
	// Output:
	// It runs at 09:00, on the 1st day of the month and on Monday, every month.
	// [1]
}

func ExampleExpression_NextAfter() {
	e, err := cronwhen.Parse("30 9 * * 1-5")
	if err != nil {
		fmt.Println(err)
		return
	}

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) // a Friday
	for _, run := range e.NextAfter(now, 3, 0) {
		fmt.Println(run.Format("Mon Jan 2 15:04"))
	}
	// Output:
	// Mon Aug 31 09:30
	// Tue Sep 1 09:30
	// Wed Sep 2 09:30
}

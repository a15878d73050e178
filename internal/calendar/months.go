package calendar

import (
	"fmt"

	"github.com/teambition/rrule-go"
)

// Months returns n consecutive months beginning with start.
func Months(start Month, n int) ([]Month, error) {
	if n <= 0 {
		return nil, nil
	}
	if _, err := NewMonth(start.Year, start.Month); err != nil {
		return nil, err
	}
	// The recurrence itself never fails past MaxYear, so the bound is
	// checked here before it runs.
	last := start.Add(n - 1)
	if _, err := NewMonth(last.Year, last.Month); err != nil {
		return nil, fmt.Errorf("stepping %d months from %s: %w", n-1, start, err)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:       rrule.MONTHLY,
		Dtstart:    start.First(),
		Bymonthday: []int{1},
		Count:      n,
	})
	if err != nil {
		return nil, fmt.Errorf("monthly recurrence from %s: %w", start, err)
	}

	firsts := r.All()
	months := make([]Month, 0, len(firsts))
	for _, t := range firsts {
		months = append(months, DateOf(t).MonthOf())
	}
	if len(months) != n {
		return nil, fmt.Errorf("%w: got %d of %d months from %s", ErrOutOfRange, len(months), n, start)
	}
	return months, nil
}
